package config

import (
	"reflect"
	"strings"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Auth.FailurePolicy != domainauth.PolicyFailClosed {
		t.Errorf("FailurePolicy = %q, want %q", cfg.Auth.FailurePolicy, domainauth.PolicyFailClosed)
	}
	if cfg.Auth.Store != CredentialStoreRedis {
		t.Errorf("Store = %q, want %q", cfg.Auth.Store, CredentialStoreRedis)
	}
	if cfg.Backend.ValidatePath != "admin/dashboard" || cfg.Backend.TokenPath != "access_token" {
		t.Errorf("unexpected backend paths: %+v", cfg.Backend)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected HTTP defaults: %+v", cfg.HTTP)
	}
	if cfg.Geocode.Region != "Hà Nội" || cfg.Geocode.Limit != 5 {
		t.Errorf("unexpected geocode defaults: %+v", cfg.Geocode)
	}
	if cfg.Redis.KeyPrefix != "sportbook:credential:" {
		t.Errorf("KeyPrefix = %q", cfg.Redis.KeyPrefix)
	}
}

func TestAppConfig_ParseAuthEnv(t *testing.T) {
	t.Setenv("AUTH_FAILURE_POLICY", "STRICT")
	t.Setenv("CREDENTIAL_STORE", "cookie")
	t.Setenv("SESSION_COOKIE_NAME", "sb")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("SESSION_HASH_KEY", strings.Repeat("h", 32))
	t.Setenv("SESSION_BLOCK_KEY", strings.Repeat("b", 16))

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}

	expected := AuthConfig{
		FailurePolicy: domainauth.PolicyStrict,
		Store:         CredentialStoreCookie,
		Session: SessionConfig{
			CookieName: "sb",
			TTL:        2 * time.Hour,
			HashKey:    strings.Repeat("h", 32),
			BlockKey:   strings.Repeat("b", 16),
		},
	}

	if !reflect.DeepEqual(cfg.Auth, expected) {
		t.Fatalf("unexpected auth configuration:\nexpected: %#v\ngot:      %#v", expected, cfg.Auth)
	}
	if err := cfg.Auth.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestAppConfig_ParseRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "failure policy", key: "AUTH_FAILURE_POLICY", val: "lenient"},
		{name: "credential store", key: "CREDENTIAL_STORE", val: "memcached"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			var cfg AppConfig
			if err := env.Parse(&cfg); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     AuthConfig
		wantErr string
	}{
		{
			name: "redis store needs no keys",
			cfg:  AuthConfig{Store: CredentialStoreRedis},
		},
		{
			name:    "cookie store short hash key",
			cfg:     AuthConfig{Store: CredentialStoreCookie, Session: SessionConfig{HashKey: "short", BlockKey: strings.Repeat("b", 32)}},
			wantErr: "SESSION_HASH_KEY",
		},
		{
			name:    "cookie store bad block key",
			cfg:     AuthConfig{Store: CredentialStoreCookie, Session: SessionConfig{HashKey: strings.Repeat("h", 32), BlockKey: "seven77"}},
			wantErr: "SESSION_BLOCK_KEY",
		},
		{
			name: "cookie store valid",
			cfg:  AuthConfig{Store: CredentialStoreCookie, Session: SessionConfig{HashKey: strings.Repeat("h", 64), BlockKey: strings.Repeat("b", 24)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBackendConfig_SanitizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantURL string
		wantErr bool
	}{
		{name: "adds trailing slash", url: "https://api.example.com/api", wantURL: "https://api.example.com/api/"},
		{name: "keeps trailing slash", url: "http://localhost:8000/api/", wantURL: "http://localhost:8000/api/"},
		{name: "relative", url: "api/", wantURL: "api/", wantErr: true},
		{name: "wrong scheme", url: "ftp://api.example.com/", wantURL: "ftp://api.example.com/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := BackendConfig{URL: tt.url}
			b.Sanitize()
			if b.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", b.URL, tt.wantURL)
			}
			if err := b.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackendConfig_Sanitize_Clamps(t *testing.T) {
	b := BackendConfig{
		URL:          "https://api.example.com/",
		MaxRetries:   10,
		RetryWaitMin: time.Second,
		RetryWaitMax: time.Millisecond,
		RateLimit:    -1,
		RateBurst:    -3,
	}
	b.Sanitize()

	if b.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v", b.Timeout)
	}
	if b.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", b.MaxRetries)
	}
	if b.RetryWaitMax != time.Second {
		t.Errorf("RetryWaitMax = %v, want 1s", b.RetryWaitMax)
	}
	if b.RateLimit != 0 || b.RateBurst != 0 {
		t.Errorf("rate settings not clamped: %v/%d", b.RateLimit, b.RateBurst)
	}
}

func TestHTTPConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		domain  string
		csrfKey string
		wantErr bool
	}{
		{name: "empty domain", domain: ""},
		{name: "registrable domain", domain: "sportbook.vn"},
		{name: "subdomain with leading dot", domain: ".admin.sportbook.vn"},
		{name: "public suffix", domain: "com.vn", wantErr: true},
		{name: "bare tld", domain: "com", wantErr: true},
		{name: "valid csrf key", csrfKey: strings.Repeat("k", 32)},
		{name: "short csrf key", csrfKey: "short", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HTTPConfig{CookieDomain: tt.domain, CSRFKey: tt.csrfKey}
			h.Sanitize()
			if err := h.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeocodeConfig_Sanitize(t *testing.T) {
	g := GeocodeConfig{Limit: 500, RateLimit: 0, MaxRetries: -1}
	g.Sanitize()

	if g.Limit != 50 || g.RateLimit != 1 || g.MaxRetries != 0 || g.Timeout != 5*time.Second {
		t.Fatalf("unexpected sanitized config: %+v", g)
	}
}

func TestAppConfig_Validate_RequiresCSRFKeyOutsideDev(t *testing.T) {
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "CSRF_KEY") {
		t.Fatalf("Validate() = %v, want CSRF_KEY error", err)
	}

	cfg.IsDev = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dev Validate() = %v", err)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	tests := []struct {
		nodeEnv string
		want    bool
	}{
		{nodeEnv: "development", want: true},
		{nodeEnv: "DEV", want: true},
		{nodeEnv: "production", want: false},
		{nodeEnv: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.nodeEnv, func(t *testing.T) {
			t.Setenv("NODE_ENV", tt.nodeEnv)
			cfg := AppConfig{}
			cfg.Sanitize()
			if cfg.IsDev != tt.want {
				t.Fatalf("IsDev = %v, want %v", cfg.IsDev, tt.want)
			}
		})
	}
}
