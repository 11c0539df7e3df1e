package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNewRouter_RequiresGuardAndServices(t *testing.T) {
	_, err := NewRouter(RouterServices{})
	assert.Error(t, err)
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.get("/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Zero(t, f.Validator.Calls())
}

func TestRouter_RootIsPublicHome(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})
	f.Catalog.EXPECT().CatalogCategories(gomock.Any()).Return([]booking.Category{{Name: "Tennis", Slug: "tennis"}}, nil)

	rec := f.get("/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/category/tennis"`)
	assert.Contains(t, rec.Body.String(), `href="/auth"`)
	assert.Zero(t, f.Validator.Calls())
}

func TestRouter_NotFound(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.get("/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "The page you are looking for does not exist.")

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec = f.do(req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"not_found"`)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.get("/auth")

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
