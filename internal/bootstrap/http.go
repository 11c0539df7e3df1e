package bootstrap

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	sportbook "github.com/sportbooking/sportbook-web"
	"github.com/sportbooking/sportbook-web/config"
	httpx "github.com/sportbooking/sportbook-web/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the router and wraps it in an http.Server. The server is not started.
func NewHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	csrfCfg, err := csrfConfig(appCfg, logger)
	if err != nil {
		return nil, err
	}

	handler, err := buildHTTPHandler(httpHandlerConfig{
		Logger:   logger,
		Services: cfg.Services,
		CSRF:     csrfCfg,
	})
	if err != nil {
		return nil, err
	}

	addr := appCfg.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  appCfg.HTTP.ReadTimeout,
		WriteTimeout: appCfg.HTTP.WriteTimeout,
		IdleTimeout:  appCfg.HTTP.IdleTimeout,
	}, nil
}

type httpHandlerConfig struct {
	Logger   *slog.Logger
	Services ServiceContainer
	CSRF     *httpx.CSRFConfig
}

func buildHTTPHandler(cfg httpHandlerConfig) (http.Handler, error) {
	templates, err := fs.Sub(sportbook.TemplateFS, "web/templates")
	if err != nil {
		return nil, fmt.Errorf("template fs: %w", err)
	}
	static, err := fs.Sub(sportbook.StaticFS, "web/static")
	if err != nil {
		return nil, fmt.Errorf("static fs: %w", err)
	}

	router, err := httpx.NewRouter(httpx.RouterServices{
		Auth:       cfg.Services.Auth,
		Admin:      cfg.Services.Admin,
		Customer:   cfg.Services.Customer,
		Geocode:    cfg.Services.Geocode,
		Guard:      cfg.Services.Guard,
		Store:      cfg.Services.Store,
		TemplateFS: templates,
		StaticFS:   static,
		CSRF:       cfg.CSRF,
		Logger:     cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	// Order: Recover -> Logging -> Router
	h := httpx.Logging(cfg.Logger)(router)
	h = httpx.Recover(cfg.Logger)(h)
	return h, nil
}

// csrfConfig uses CSRF_KEY, or a per-process random key in dev mode. Tokens issued with a
// random key stop verifying after a restart.
func csrfConfig(cfg *config.AppConfig, logger *slog.Logger) (*httpx.CSRFConfig, error) {
	key := []byte(cfg.HTTP.CSRFKey)
	if len(key) == 0 {
		if !cfg.IsDev {
			return nil, errors.New("CSRF_KEY is required outside development mode")
		}
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate csrf key: %w", err)
		}
		logger.Warn("CSRF_KEY not set; using a random key for this process")
	}
	return &httpx.CSRFConfig{
		AuthKey:        key,
		Secure:         cfg.HTTP.SecureCookies,
		CookieDomain:   cfg.HTTP.CookieDomain,
		TrustedOrigins: cfg.HTTP.CSRFTrustedOrigins,
		Logger:         logger,
	}, nil
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Timeout time.Duration // Optional: defaults to 10s
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server, letting in-flight requests
// finish within the timeout.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.Info("HTTP server stopped")
	}
	return nil
}
