package httpx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	authmocks "github.com/sportbooking/sportbook-web/internal/mocks/auth"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("dial tcp: connection refused")

// guardedHandler mounts RequireCredential in front of a handler that records whether it ran
// and which slot it saw.
type guardedHandler struct {
	handler http.Handler
	store   *authmocks.MemoryCredentialStore
	ran     bool
	slot    ports.CredentialSlot
}

func newGuardedHandler(t *testing.T, cred domainauth.Credential, v *authmocks.StubValidator, policy domainauth.FailurePolicy) *guardedHandler {
	t.Helper()
	p := &guardedHandler{store: authmocks.NewMemoryCredentialStore(cred)}
	guard := service.MustNewSessionGuard(service.SessionGuardOptions{Validator: v, Policy: policy})
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.ran = true
		p.slot, _ = GetSlotFromContext(r.Context())
		_, _ = w.Write([]byte("protected content"))
	})
	p.handler = BrowserDetection()(RequireCredential(guard, p.store)(protected))
	return p
}

func TestRequireCredential(t *testing.T) {
	tests := []struct {
		name         string
		cred         domainauth.Credential
		validateErr  error
		policy       domainauth.FailurePolicy
		wantRan      bool
		wantCalls    int
		wantStored   domainauth.Credential
		wantLocation string
	}{
		{
			name:         "empty store redirects without contacting the backend",
			wantCalls:    0,
			wantLocation: LoginPath,
		},
		{
			name:       "accepted credential renders protected content",
			cred:       "abc123",
			wantRan:    true,
			wantCalls:  1,
			wantStored: "abc123",
		},
		{
			name:         "rejected credential is cleared",
			cred:         "abc123",
			validateErr:  domainauth.ErrCredentialRejected,
			wantCalls:    1,
			wantLocation: LoginPath,
		},
		{
			name:         "transport failure is treated as rejection",
			cred:         "abc123",
			validateErr:  errBackendDown,
			wantCalls:    1,
			wantLocation: LoginPath,
		},
		{
			name:         "strict policy keeps the credential on transport failure",
			cred:         "abc123",
			validateErr:  errBackendDown,
			policy:       domainauth.PolicyStrict,
			wantCalls:    1,
			wantStored:   "abc123",
			wantLocation: LoginPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &authmocks.StubValidator{ValidateFunc: func(context.Context, domainauth.Credential) error {
				return tt.validateErr
			}}
			p := newGuardedHandler(t, tt.cred, v, tt.policy)

			rec := httptest.NewRecorder()
			p.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantRan, p.ran)
			assert.Equal(t, tt.wantCalls, v.Calls())
			assert.Equal(t, tt.wantStored, p.store.Shared.Peek())
			if tt.wantLocation != "" {
				assert.Equal(t, http.StatusSeeOther, rec.Code)
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
				assert.NotContains(t, rec.Body.String(), "protected content")
			} else {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "protected content", rec.Body.String())
				assert.Same(t, p.store.Shared, p.slot)
			}
		})
	}
}

func TestRequireCredential_HTMXGetsHxRedirect(t *testing.T) {
	p := newGuardedHandler(t, "", &authmocks.StubValidator{}, "")

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("Hx-Request", "true")
	rec := httptest.NewRecorder()
	p.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Hx-Redirect"))
	assert.Empty(t, rec.Body.String())
}

func TestRequireCredential_APIGetsJSON401(t *testing.T) {
	p := newGuardedHandler(t, "abc123", authmocks.AcceptToken("other"), "")

	rec := httptest.NewRecorder()
	p.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/geocode?q=x", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"authentication_required","message":"authentication required"}`, rec.Body.String())
	assert.True(t, p.store.Shared.Peek().IsZero())
}

func TestRequireCredential_WritesNothingWhileChecking(t *testing.T) {
	g := newGate()
	p := newGuardedHandler(t, "abc123", g.validator(), "")

	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	}()

	<-g.entered
	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, rec.Header())
	assert.False(t, rec.Flushed)
	assert.Equal(t, domainauth.Credential("abc123"), p.store.Shared.Peek())

	g.release <- nil
	<-done
	assert.True(t, p.ran)
	assert.Equal(t, "protected content", rec.Body.String())
}

func TestRequireCredential_ClientGoneDiscardsCheck(t *testing.T) {
	g := newGate()
	p := newGuardedHandler(t, "abc123", g.validator(), "")

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/admin", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.handler.ServeHTTP(rec, req)
	}()

	<-g.entered
	cancel()
	<-done

	assert.False(t, p.ran)
	assert.Zero(t, rec.Body.Len())
	assert.Empty(t, rec.Header().Get("Location"))
	assert.Equal(t, domainauth.Credential("abc123"), p.store.Shared.Peek())
	_, clears := p.store.Shared.Writes()
	assert.Zero(t, clears)
}

func TestRequireCredential_RevalidatesEveryRequest(t *testing.T) {
	v := authmocks.AcceptToken("abc123")
	p := newGuardedHandler(t, "abc123", v, "")

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		p.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2, v.Calls())
	sets, clears := p.store.Shared.Writes()
	assert.Zero(t, sets)
	assert.Zero(t, clears)
}

func TestBrowserDetection(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		accept  string
		htmx    bool
		browser bool
	}{
		{name: "API route with JSON accept", path: "/api/geocode", accept: "application/json"},
		{name: "API route even with html accept", path: "/api/geocode", accept: "text/html"},
		{name: "static asset", path: "/static/css/app.css"},
		{name: "page with html accept", path: "/admin", accept: "text/html,application/xhtml+xml", browser: true},
		{name: "page without accept", path: "/admin", browser: true},
		{name: "htmx request", path: "/admin/bookings", accept: "*/*", htmx: true, browser: true},
		{name: "page with JSON accept", path: "/auth/status", accept: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			h := BrowserDetection()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				got = IsBrowserRequest(r)
			}))
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			if tt.htmx {
				req.Header.Set("Hx-Request", "true")
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.browser, got)
		})
	}
}

func TestLoggingAndRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), Logging(logger), Recover(logger))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), `"msg":"panic"`)
	assert.Contains(t, buf.String(), `"status":500`)
}

func TestSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeaders(http.NotFoundHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
