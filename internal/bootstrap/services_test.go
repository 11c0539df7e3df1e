package bootstrap

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/sportbooking/sportbook-web/config"
	"github.com/sportbooking/sportbook-web/internal/adapters/cookiestore"
	redisstore "github.com/sportbooking/sportbook-web/internal/adapters/redis"
	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAppConfig(store config.CredentialStoreKind) *config.AppConfig {
	cfg := &config.AppConfig{
		IsDev: true,
		Auth: config.AuthConfig{
			FailurePolicy: domainauth.PolicyStrict,
			Store:         store,
			Session: config.SessionConfig{
				HashKey:  strings.Repeat("h", 32),
				BlockKey: strings.Repeat("b", 32),
			},
		},
		Backend: config.BackendConfig{URL: "http://backend.invalid/api/"},
		Redis:   config.RedisConfig{KeyPrefix: "test:credential:"},
		Geocode: config.GeocodeConfig{Enabled: true, UserAgent: "sportbook-test"},
	}
	cfg.Sanitize()
	return cfg
}

func TestNewServices_CookieStore(t *testing.T) {
	cfg := testAppConfig(config.CredentialStoreCookie)

	services, err := NewServices(&ServiceDeps{Config: cfg, Logger: testLogger()})

	require.NoError(t, err)
	assert.IsType(t, &cookiestore.CredentialStore{}, services.Store)
	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Admin)
	assert.NotNil(t, services.Customer)
	assert.NotNil(t, services.Geocode)
	assert.Equal(t, domainauth.PolicyStrict, services.Guard.Policy())
}

func TestNewServices_RedisStore(t *testing.T) {
	client, _ := testutil.SetupMiniRedis(t)
	cfg := testAppConfig(config.CredentialStoreRedis)
	cfg.Geocode.Enabled = false

	services, err := NewServices(&ServiceDeps{Config: cfg, RedisClient: client, Logger: testLogger()})

	require.NoError(t, err)
	assert.IsType(t, &redisstore.CredentialStore{}, services.Store)
	assert.Nil(t, services.Geocode)
}

func TestNewServices_Errors(t *testing.T) {
	tests := []struct {
		name    string
		deps    *ServiceDeps
		wantErr string
	}{
		{name: "nil deps", deps: nil, wantErr: "config is required"},
		{
			name:    "redis store without client",
			deps:    &ServiceDeps{Config: testAppConfig(config.CredentialStoreRedis)},
			wantErr: "requires a redis client",
		},
		{
			name: "cookie store with short key",
			deps: func() *ServiceDeps {
				cfg := testAppConfig(config.CredentialStoreCookie)
				cfg.Auth.Session.HashKey = "short"
				return &ServiceDeps{Config: cfg}
			}(),
			wantErr: "cookie credential store",
		},
		{
			name: "unknown store",
			deps: &ServiceDeps{Config: &config.AppConfig{
				Auth: config.AuthConfig{Store: "memcached"},
			}},
			wantErr: "unknown credential store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewServices(tt.deps)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildGeocodeService_Disabled(t *testing.T) {
	svc, err := BuildGeocodeService(config.GeocodeConfig{Enabled: false}, nil, testLogger())

	require.NoError(t, err)
	assert.Nil(t, svc)
}
