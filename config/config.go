package config

import (
	"errors"
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Credential store and failure policy
//   - backend.go: Backend Authority client
//   - redis.go: Redis connection for server-side credential slots
//   - http.go: HTTP server, cookies and CSRF
//   - geocode.go: Address search
type AppConfig struct {
	// IsDev controls development mode behavior (random CSRF key, relaxed checks).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Credential store and guard configuration
	Auth AuthConfig

	// Backend Authority configuration
	Backend BackendConfig `envPrefix:"BACKEND_"`

	// Redis configuration (used when CREDENTIAL_STORE=redis)
	Redis RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Address search configuration
	Geocode GeocodeConfig `envPrefix:"GEOCODE_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.Backend.Sanitize()
	c.HTTP.Sanitize()
	c.Geocode.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// Validate reports settings that cannot produce a working server. Call it after Sanitize.
func (c *AppConfig) Validate() error {
	errs := []error{
		c.Auth.Validate(),
		c.Backend.Validate(),
		c.HTTP.Validate(),
		c.Geocode.Validate(),
	}
	if !c.IsDev && c.HTTP.CSRFKey == "" {
		errs = append(errs, errors.New("CSRF_KEY is required outside development mode"))
	}
	return errors.Join(errs...)
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
