package httpx

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sportbook "github.com/sportbooking/sportbook-web"
	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/mocks"
	authmocks "github.com/sportbooking/sportbook-web/internal/mocks/auth"
	"github.com/sportbooking/sportbook-web/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testTemplateFS returns the embedded page templates.
func testTemplateFS(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(sportbook.TemplateFS, "web/templates")
	require.NoError(t, err)
	return sub
}

// RequireTemplateRenderer creates a TemplateRenderer over the embedded templates.
func RequireTemplateRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: testTemplateFS(t)})
	require.NoError(t, err)
	return tr
}

// ContainsAll checks if a string contains all the given substrings.
func ContainsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

type fixtureOptions struct {
	Credential    domainauth.Credential
	Validator     *authmocks.StubValidator
	Policy        domainauth.FailurePolicy
	Authenticator *authmocks.StubAuthenticator
	CSRF          *CSRFConfig
}

// routerFixture is a full router over in-memory credential storage, a stub backend
// validator and gomock backend APIs.
type routerFixture struct {
	Handler   http.Handler
	Store     *authmocks.MemoryCredentialStore
	Validator *authmocks.StubValidator
	API       *mocks.MockAdminAPI
	Catalog   *mocks.MockCatalogAPI
	Bookings  *mocks.MockBookingAPI
	Geocoder  *mocks.MockGeocoder
}

func newRouterFixture(t *testing.T, opts fixtureOptions) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	validator := opts.Validator
	if validator == nil {
		validator = authmocks.AcceptToken("abc123")
	}
	authenticator := opts.Authenticator
	if authenticator == nil {
		authenticator = &authmocks.StubAuthenticator{}
	}

	f := &routerFixture{
		Store:     authmocks.NewMemoryCredentialStore(opts.Credential),
		Validator: validator,
		API:       mocks.NewMockAdminAPI(ctrl),
		Catalog:   mocks.NewMockCatalogAPI(ctrl),
		Bookings:  mocks.NewMockBookingAPI(ctrl),
		Geocoder:  mocks.NewMockGeocoder(ctrl),
	}

	guard := service.MustNewSessionGuard(service.SessionGuardOptions{Validator: validator, Policy: opts.Policy})
	geocode, err := service.NewGeocodeService(service.GeocodeServiceOptions{Geocoder: f.Geocoder})
	require.NoError(t, err)

	f.Handler, err = NewRouter(RouterServices{
		Auth:  service.NewAuthService(service.AuthServiceOptions{Authenticator: authenticator}),
		Admin: service.NewAdminService(service.AdminServiceOptions{API: f.API}),
		Customer: service.NewCustomerService(service.CustomerServiceOptions{
			Catalog:  f.Catalog,
			Bookings: f.Bookings,
		}),
		Geocode:    geocode,
		Guard:      guard,
		Store:      f.Store,
		TemplateFS: testTemplateFS(t),
		CSRF:       opts.CSRF,
	})
	require.NoError(t, err)
	return f
}

func (f *routerFixture) do(r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.Handler.ServeHTTP(rec, r)
	return rec
}

func (f *routerFixture) get(target string) *httptest.ResponseRecorder {
	return f.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (f *routerFixture) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	return f.do(newFormRequest(target, form))
}

func newFormRequest(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// gate is a validator that blocks until released, so tests can observe a check in flight.
type gate struct {
	entered chan struct{}
	release chan error
}

func newGate() *gate {
	return &gate{entered: make(chan struct{}), release: make(chan error, 1)}
}

func (g *gate) validator() *authmocks.StubValidator {
	return &authmocks.StubValidator{ValidateFunc: func(ctx context.Context, _ domainauth.Credential) error {
		close(g.entered)
		select {
		case err := <-g.release:
			return err
		case <-ctx.Done():
			return ctx.Err()
		}
	}}
}
