// Package config provides type-safe environment variable loading.
//
// A .env file in the working directory is loaded once before the first parse;
// real environment variables always win over .env values.
package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var loadDotEnv = sync.OnceFunc(func() {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()
})

// Load parses environment variables into the given config struct.
func Load(cfg any) error {
	loadDotEnv()
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config %T: %w", cfg, err)
	}
	return nil
}

// MustLoad is Load that panics on failure, for use at startup.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
