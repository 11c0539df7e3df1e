package httpx

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/csrf"
)

// CSRFConfig holds configuration for CSRF protection middleware.
type CSRFConfig struct {
	// AuthKey signs the CSRF cookie; 32 bytes.
	AuthKey []byte
	// Secure marks the CSRF cookie Secure. Leave false only for local HTTP development.
	Secure bool
	// CookieDomain is the domain for the CSRF cookie
	CookieDomain string
	// TrustedOrigins lists extra hosts allowed to post forms (e.g. "admin.example.com").
	TrustedOrigins []string
	Logger         *slog.Logger
}

// CSRFProtection returns a middleware that guards every unsafe request with gorilla/csrf,
// whatever its content type. Safe methods (GET, HEAD, OPTIONS, TRACE) pass through.
// Requests that did not arrive over TLS (directly or via X-Forwarded-Proto) are marked as
// plaintext so the origin check does not demand an https Referer.
func CSRFProtection(cfg CSRFConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts := []csrf.Option{
		csrf.Secure(cfg.Secure),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WarnContext(r.Context(), "csrf validation failed",
				slog.String("path", r.URL.Path),
				slog.Any("reason", csrf.FailureReason(r)))
			http.Error(w, "CSRF token validation failed", http.StatusForbidden)
		})),
	}
	if cfg.CookieDomain != "" {
		opts = append(opts, csrf.Domain(cfg.CookieDomain))
	}
	if len(cfg.TrustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(cfg.TrustedOrigins))
	}
	protect := csrf.Protect(cfg.AuthKey, opts...)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS == nil && !isForwardedHTTPS(r) {
				r = csrf.PlaintextHTTPRequest(r)
			}
			protected.ServeHTTP(w, r)
		})
	}
}

// isForwardedHTTPS checks if the request was forwarded over HTTPS.
// Handles comma-separated values in X-Forwarded-Proto header.
func isForwardedHTTPS(r *http.Request) bool {
	for _, proto := range strings.Split(r.Header.Get("X-Forwarded-Proto"), ",") {
		if strings.EqualFold(strings.TrimSpace(proto), "https") {
			return true
		}
	}
	return false
}

// csrfField returns the hidden form input carrying the request's CSRF token, or nothing when
// the request did not pass through CSRFProtection.
func csrfField(r *http.Request) template.HTML {
	if csrf.Token(r) == "" {
		return ""
	}
	return csrf.TemplateField(r)
}
