package cookie

import "net/http"

// Config provides environment-based configuration for the cookie manager.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
}

// NewFromConfig creates a Manager from configuration.
func NewFromConfig(cfg Config) *Manager {
	opts := make([]Option, 0, 4)
	if cfg.Path != "" {
		opts = append(opts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		opts = append(opts, WithDomain(cfg.Domain))
	}
	opts = append(opts,
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	)
	if cfg.SameSite != 0 {
		opts = append(opts, WithSameSite(cfg.SameSite))
	}
	return New(opts...)
}
