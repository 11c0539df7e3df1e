package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BackendConfig configures the client for the Backend Authority REST API.
type BackendConfig struct {
	// URL is the absolute API root, e.g. "https://api.example.com/api/".
	URL string `env:"URL" envDefault:"http://localhost:8000/api/"`

	// ValidatePath is the protected endpoint used to check a bearer token.
	ValidatePath string `env:"VALIDATE_PATH" envDefault:"admin/dashboard"`

	// TokenPath is the JMESPath expression locating the token in the login response.
	TokenPath string `env:"TOKEN_PATH" envDefault:"access_token"`

	Timeout      time.Duration `env:"TIMEOUT"        envDefault:"10s"`
	MaxRetries   int           `env:"MAX_RETRIES"    envDefault:"2"`
	RetryWaitMin time.Duration `env:"RETRY_WAIT_MIN" envDefault:"100ms"`
	RetryWaitMax time.Duration `env:"RETRY_WAIT_MAX" envDefault:"1s"`

	// RateLimit caps outgoing requests per second; 0 disables limiting.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"0"`
	RateBurst int     `env:"RATE_BURST" envDefault:"0"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	b.URL = strings.TrimSpace(b.URL)
	if b.URL != "" && !strings.HasSuffix(b.URL, "/") {
		b.URL += "/"
	}
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
	if b.MaxRetries < 0 {
		b.MaxRetries = 0
	}
	if b.MaxRetries > 5 {
		b.MaxRetries = 5
	}
	if b.RetryWaitMax < b.RetryWaitMin {
		b.RetryWaitMax = b.RetryWaitMin
	}
	if b.RateLimit < 0 {
		b.RateLimit = 0
	}
	if b.RateBurst < 0 {
		b.RateBurst = 0
	}
}

// Validate requires an absolute http(s) URL.
func (b *BackendConfig) Validate() error {
	u, err := url.Parse(b.URL)
	if err != nil {
		return fmt.Errorf("BACKEND_URL: %w", err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("BACKEND_URL must be an absolute http(s) URL, got %q", b.URL)
	}
	return nil
}
