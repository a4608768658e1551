package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"daybook/core/backend"
	"daybook/core/config"
	"daybook/core/cookie"
	"daybook/core/gate"
	"daybook/core/logger"
	"daybook/core/server"
	"daybook/core/token"
	"daybook/handler"
)

type appConfig struct {
	Logger  logger.Config
	Cookie  cookie.Config
	Token   token.Config
	Backend backend.Config
	Gate    gate.Config
	Server  server.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg.Logger)
	config.MustLoad(&cfg.Cookie)
	config.MustLoad(&cfg.Token)
	config.MustLoad(&cfg.Backend)
	config.MustLoad(&cfg.Gate)
	config.MustLoad(&cfg.Server)

	log := logger.New(cfg.Logger)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg appConfig, log *slog.Logger) error {
	verifier, err := token.NewFromConfig(cfg.Token)
	if err != nil {
		return err
	}

	issuer, err := backend.NewClient(cfg.Backend.GraphQLEndpoint,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(log),
	)
	if err != nil {
		return err
	}

	cookies := cookie.NewFromConfig(cfg.Cookie)

	g, err := gate.New(cfg.Gate, cookies, verifier, issuer, gate.WithLogger(log))
	if err != nil {
		return err
	}

	auth, err := handler.NewAuth(g, issuer, handler.WithLogger(log))
	if err != nil {
		return err
	}

	router := handler.NewRouter(g, auth, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	return srv.Start(ctx, router)
}
