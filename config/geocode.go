package config

import (
	"errors"
	"time"
)

// GeocodeConfig configures the Nominatim address search.
type GeocodeConfig struct {
	// Enabled mounts GET /api/geocode.
	Enabled bool `env:"ENABLED" envDefault:"true"`

	BaseURL string `env:"BASE_URL" envDefault:"https://nominatim.openstreetmap.org/"`

	// UserAgent identifies this application, as the Nominatim usage policy requires.
	UserAgent string `env:"USER_AGENT" envDefault:"sportbook-web/1.0"`
	Referer   string `env:"REFERER"`

	Region   string `env:"REGION"   envDefault:"Hà Nội"`
	ViewBox  string `env:"VIEWBOX"  envDefault:"105.5,21.3,106.1,20.7"`
	Language string `env:"LANGUAGE" envDefault:"vi"`
	Limit    int    `env:"LIMIT"    envDefault:"5"`

	// RateLimit is requests per second; the public instance allows at most 1.
	RateLimit  float64       `env:"RATE_LIMIT"  envDefault:"1"`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"5s"`
	MaxRetries int           `env:"MAX_RETRIES" envDefault:"1"`
}

// Sanitize applies guardrails to geocode configuration values.
func (g *GeocodeConfig) Sanitize() {
	if g.Limit < 1 {
		g.Limit = 1
	}
	if g.Limit > 50 {
		g.Limit = 50
	}
	if g.RateLimit <= 0 {
		g.RateLimit = 1
	}
	if g.Timeout <= 0 {
		g.Timeout = 5 * time.Second
	}
	if g.MaxRetries < 0 {
		g.MaxRetries = 0
	}
}

// Validate requires a user agent when the search is enabled.
func (g *GeocodeConfig) Validate() error {
	if g.Enabled && g.UserAgent == "" {
		return errors.New("GEOCODE_USER_AGENT is required when the address search is enabled")
	}
	return nil
}
