package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
)

// CredentialStoreKind selects where credential slots live.
type CredentialStoreKind string

const (
	// CredentialStoreRedis keeps the token in Redis behind an opaque session cookie.
	CredentialStoreRedis CredentialStoreKind = "redis"
	// CredentialStoreCookie keeps the token in an encrypted, signed cookie.
	CredentialStoreCookie CredentialStoreKind = "cookie"
)

// UnmarshalText implements encoding.TextUnmarshaler for CredentialStoreKind.
func (k *CredentialStoreKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	switch v {
	case "redis", "cookie":
		*k = CredentialStoreKind(v)
		return nil
	default:
		return fmt.Errorf("invalid CredentialStoreKind: %q (valid options: redis, cookie)", v)
	}
}

// SessionConfig controls the cookie that identifies a client's credential slot.
type SessionConfig struct {
	// CookieName overrides the store's default cookie name.
	CookieName string `env:"COOKIE_NAME"`

	// TTL is how long a stored credential survives without being replaced.
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// HashKey signs cookie-store sessions (at least 32 bytes).
	HashKey string `env:"HASH_KEY"`

	// BlockKey encrypts cookie-store sessions (16, 24 or 32 bytes).
	BlockKey string `env:"BLOCK_KEY"`
}

// AuthConfig groups credential store and guard configuration.
type AuthConfig struct {
	// FailurePolicy decides whether a backend outage logs users out.
	FailurePolicy domainauth.FailurePolicy `env:"AUTH_FAILURE_POLICY" envDefault:"fail-closed"`

	// Store selects the credential store implementation.
	Store CredentialStoreKind `env:"CREDENTIAL_STORE" envDefault:"redis"`

	// Session cookie configuration.
	Session SessionConfig `envPrefix:"SESSION_"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.FailurePolicy == "" {
		a.FailurePolicy = domainauth.PolicyFailClosed
	}
	if a.Store == "" {
		a.Store = CredentialStoreRedis
	}
	if a.Session.TTL <= 0 {
		a.Session.TTL = 24 * time.Hour
	}
}

// Validate rejects a cookie store without usable keys.
func (a *AuthConfig) Validate() error {
	if a.Store != CredentialStoreCookie {
		return nil
	}
	if len(a.Session.HashKey) < 32 {
		return errors.New("SESSION_HASH_KEY must be at least 32 bytes when CREDENTIAL_STORE=cookie")
	}
	switch len(a.Session.BlockKey) {
	case 16, 24, 32:
		return nil
	default:
		return errors.New("SESSION_BLOCK_KEY must be 16, 24 or 32 bytes when CREDENTIAL_STORE=cookie")
	}
}
