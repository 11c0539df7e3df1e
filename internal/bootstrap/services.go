package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sportbooking/sportbook-web/config"
	"github.com/sportbooking/sportbook-web/internal/adapters/backend"
	"github.com/sportbooking/sportbook-web/internal/adapters/cookiestore"
	"github.com/sportbooking/sportbook-web/internal/adapters/nominatim"
	redisstore "github.com/sportbooking/sportbook-web/internal/adapters/redis"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Store    ports.CredentialStore
	Guard    *service.SessionGuard
	Auth     *service.AuthService
	Admin    *service.AdminService
	Customer *service.CustomerService
	Geocode  *service.GeocodeService // nil when the address search is disabled
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient // Required when CREDENTIAL_STORE=redis
	HTTPClient  *http.Client          // Optional: shared by the backend and geocoder clients
	Logger      *slog.Logger
}

// NewServices wires adapters into the application services.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return ServiceContainer{}, errors.New("service config is required")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	store, err := BuildCredentialStore(CredentialStoreDeps{
		Auth:        cfg.Auth,
		HTTP:        cfg.HTTP,
		Redis:       cfg.Redis,
		RedisClient: deps.RedisClient,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	client, err := BuildBackendClient(cfg.Backend, deps.HTTPClient, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	guard, err := service.NewSessionGuard(service.SessionGuardOptions{
		Validator: client,
		Policy:    cfg.Auth.FailurePolicy,
		Logger:    logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("session guard: %w", err)
	}

	geocode, err := BuildGeocodeService(cfg.Geocode, deps.HTTPClient, logger)
	if err != nil {
		return ServiceContainer{}, err
	}

	return ServiceContainer{
		Store: store,
		Guard: guard,
		Auth:  service.NewAuthService(service.AuthServiceOptions{Authenticator: client, Logger: logger}),
		Admin: service.NewAdminService(service.AdminServiceOptions{API: client, Logger: logger}),
		Customer: service.NewCustomerService(service.CustomerServiceOptions{
			Catalog:  client,
			Bookings: client,
			Logger:   logger,
		}),
		Geocode: geocode,
	}, nil
}

// CredentialStoreDeps groups what BuildCredentialStore needs.
type CredentialStoreDeps struct {
	Auth        config.AuthConfig
	HTTP        config.HTTPConfig
	Redis       config.RedisConfig
	RedisClient redis.UniversalClient
}

// BuildCredentialStore selects the credential store named by CREDENTIAL_STORE.
//
//nolint:ireturn // the store implementation is chosen at runtime.
func BuildCredentialStore(deps CredentialStoreDeps) (ports.CredentialStore, error) {
	switch deps.Auth.Store {
	case config.CredentialStoreCookie:
		store, err := cookiestore.NewCredentialStore(cookiestore.Options{
			HashKey:      []byte(deps.Auth.Session.HashKey),
			BlockKey:     []byte(deps.Auth.Session.BlockKey),
			CookieName:   deps.Auth.Session.CookieName,
			CookieDomain: deps.HTTP.CookieDomain,
			MaxAge:       deps.Auth.Session.TTL,
			Secure:       deps.HTTP.SecureCookies,
		})
		if err != nil {
			return nil, fmt.Errorf("cookie credential store: %w", err)
		}
		return store, nil

	case config.CredentialStoreRedis, "":
		if deps.RedisClient == nil {
			return nil, errors.New("redis credential store requires a redis client")
		}
		store, err := redisstore.NewCredentialStore(redisstore.CredentialStoreOptions{
			Client:       deps.RedisClient,
			Prefix:       deps.Redis.KeyPrefix,
			TTL:          deps.Auth.Session.TTL,
			CookieName:   deps.Auth.Session.CookieName,
			CookieDomain: deps.HTTP.CookieDomain,
		})
		if err != nil {
			return nil, fmt.Errorf("redis credential store: %w", err)
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown credential store %q", deps.Auth.Store)
	}
}

// BuildBackendClient creates the Backend Authority client.
func BuildBackendClient(cfg config.BackendConfig, httpClient *http.Client, logger *slog.Logger) (*backend.Client, error) {
	client, err := backend.NewClient(backend.Options{
		BaseURL:      cfg.URL,
		ValidatePath: cfg.ValidatePath,
		TokenPath:    cfg.TokenPath,
		Timeout:      cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
		RetryWaitMin: cfg.RetryWaitMin,
		RetryWaitMax: cfg.RetryWaitMax,
		RateLimit:    cfg.RateLimit,
		RateBurst:    cfg.RateBurst,
		HTTPClient:   httpClient,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}
	return client, nil
}

// BuildGeocodeService returns nil without error when the address search is disabled.
func BuildGeocodeService(cfg config.GeocodeConfig, httpClient *http.Client, logger *slog.Logger) (*service.GeocodeService, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	geocoder, err := nominatim.NewGeocoder(nominatim.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Referer:    cfg.Referer,
		RateLimit:  cfg.RateLimit,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		HTTPClient: httpClient,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("geocoder: %w", err)
	}
	svc, err := service.NewGeocodeService(service.GeocodeServiceOptions{
		Geocoder: geocoder,
		Region:   cfg.Region,
		ViewBox:  cfg.ViewBox,
		Language: cfg.Language,
		Limit:    cfg.Limit,
		Logger:   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("geocode service: %w", err)
	}
	return svc, nil
}
