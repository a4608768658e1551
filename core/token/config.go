package token

// Config provides environment-based configuration for token verification.
type Config struct {
	Secret   string `env:"JWT_SECRET_KEY,required"`
	Issuer   string `env:"JWT_ISSUER" envDefault:""`
	Audience string `env:"JWT_AUDIENCE" envDefault:""`
}

// NewFromConfig creates a Verifier from configuration.
// Issuer and audience checks are enabled only when configured.
func NewFromConfig(cfg Config) (*Verifier, error) {
	opts := make([]VerifierOption, 0, 2)
	if cfg.Issuer != "" {
		opts = append(opts, WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, WithAudience(cfg.Audience))
	}
	return NewVerifier(cfg.Secret, opts...)
}
