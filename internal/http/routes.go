package httpx

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth     *service.AuthService
	Admin    *service.AdminService
	Customer *service.CustomerService
	Geocode  *service.GeocodeService // Optional: /api/geocode is not mounted when nil
	Guard    *service.SessionGuard
	Store    ports.CredentialStore

	TemplateFS fs.FS // Required: web/templates
	StaticFS   fs.FS // Optional: served under /static/
	// CSRF enables gorilla/csrf on every unsafe request when set.
	CSRF   *CSRFConfig
	Logger *slog.Logger
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) (http.Handler, error) {
	if services.Guard == nil || services.Store == nil {
		return nil, errors.New("session guard and credential store are required")
	}
	if services.Auth == nil || services.Admin == nil || services.Customer == nil {
		return nil, errors.New("auth, admin and customer services are required")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: services.TemplateFS, Logger: logger})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	guarded := RequireCredential(services.Guard, services.Store)

	registerAuthRoutes(mux, &AuthHandlers{
		Svc:      services.Auth,
		Guard:    services.Guard,
		Store:    services.Store,
		Renderer: renderer,
		Logger:   logger,
	})
	registerAdminRoutes(mux, &AdminHandlers{Svc: services.Admin, Renderer: renderer, Logger: logger}, guarded)
	registerCustomerRoutes(mux, &CustomerHandlers{Svc: services.Customer, Renderer: renderer, Logger: logger}, guarded)
	if services.Geocode != nil {
		h := &GeocodeHandlers{Svc: services.Geocode, Logger: logger}
		mux.Handle("GET /api/geocode", guarded(http.HandlerFunc(h.Search)))
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if services.StaticFS != nil {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(services.StaticFS)))
	}
	mux.Handle("/", notFoundHandler(renderer))

	middlewares := []func(http.Handler) http.Handler{SecurityHeaders, BrowserDetection()}
	if services.CSRF != nil {
		cfg := *services.CSRF
		if cfg.Logger == nil {
			cfg.Logger = logger
		}
		middlewares = append(middlewares, CSRFProtection(cfg))
	}
	return Chain(mux, middlewares...), nil
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("GET /auth", http.HandlerFunc(h.Page))
	mux.Handle("POST /auth/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /auth/register", http.HandlerFunc(h.Register))
	mux.Handle("POST /auth/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
}

func registerAdminRoutes(mux *http.ServeMux, h *AdminHandlers, guarded func(http.Handler) http.Handler) {
	wrap := func(fn http.HandlerFunc) http.Handler { return guarded(fn) }
	mux.Handle("GET /admin", wrap(h.Dashboard))
	mux.Handle("GET /admin/categories", wrap(h.Categories))
	mux.Handle("POST /admin/categories", wrap(h.CategoryCreate))
	mux.Handle("POST /admin/categories/{id}", wrap(h.CategoryUpdate))
	mux.Handle("POST /admin/categories/{id}/delete", wrap(h.CategoryDelete))
	mux.Handle("GET /admin/bookings", wrap(h.Bookings))
	mux.Handle("POST /admin/bookings/{id}/status", wrap(h.BookingStatus))
	mux.Handle("GET /admin/courts", wrap(h.Courts))
	mux.Handle("POST /admin/courts", wrap(h.CourtCreate))
	mux.Handle("POST /admin/courts/{id}", wrap(h.CourtUpdate))
	mux.Handle("POST /admin/courts/{id}/delete", wrap(h.CourtDelete))
	mux.Handle("GET /admin/maintenance", wrap(h.Maintenance))
	mux.Handle("POST /admin/maintenance", wrap(h.MaintenanceCreate))
	mux.Handle("POST /admin/maintenance/{id}/delete", wrap(h.MaintenanceDelete))
}

func registerCustomerRoutes(mux *http.ServeMux, h *CustomerHandlers, guarded func(http.Handler) http.Handler) {
	mux.Handle("GET /{$}", http.HandlerFunc(h.Home))
	mux.Handle("GET /category/{slug}", http.HandlerFunc(h.Category))
	mux.Handle("GET /court/{id}", http.HandlerFunc(h.Court))
	mux.Handle("POST /court/{id}/bookings", guarded(http.HandlerFunc(h.RequestBooking)))
	mux.Handle("GET "+MyBookingsPath, guarded(http.HandlerFunc(h.MyBookings)))
}

// notFoundHandler renders the error page for browsers and a JSON error for API callers.
func notFoundHandler(renderer *TemplateRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsBrowserRequest(r) {
			WriteError(w, ErrorParams{
				Code:    http.StatusNotFound,
				ErrCode: "not_found",
				Err:     errors.New("resource not found"),
			})
			return
		}
		data := NewPageData(r, PageMeta{Title: "Page not found", CurrentPage: PageError})
		data.Error = "The page you are looking for does not exist."
		renderer.Render(w, r, http.StatusNotFound, data)
	})
}
