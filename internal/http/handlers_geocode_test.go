package httpx

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGeocodeSearch(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q ports.GeocodeQuery) ([]ports.GeocodeResult, error) {
			assert.Equal(t, "Hoàn Kiếm, Hà Nội", q.Text)
			return []ports.GeocodeResult{
				{Lat: 21.0287, Lng: 105.8523, DisplayName: "Hoàn Kiếm, Hà Nội, Việt Nam"},
				{Lat: 10.77, Lng: 106.70, DisplayName: "Hoàn Kiếm street, Hồ Chí Minh"},
			}, nil
		})

	rec := f.get("/api/geocode?q=Ho%C3%A0n+Ki%E1%BA%BFm")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"lat":21.0287,"lng":105.8523,"address":"Hoàn Kiếm, Hà Nội, Việt Nam"}]`, rec.Body.String())
}

func TestGeocodeSearch_BlankQuery(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})

	rec := f.get("/api/geocode?q=+")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGeocodeSearch_Unavailable(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Geocoder.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Wrap(errors.New("timeout"), apperrors.ErrCodeUnavailable, "geocoder unavailable"))

	rec := f.get("/api/geocode?q=Ba+Dinh")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"unavailable"`)
}

func TestGeocodeSearch_RequiresCredential(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.get("/api/geocode?q=Ba+Dinh")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}
