package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	"github.com/sportbooking/sportbook-web/internal/mocks"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newGeocodeFixture(t *testing.T) (*GeocodeService, *mocks.MockGeocoder) {
	t.Helper()
	geo := mocks.NewMockGeocoder(gomock.NewController(t))
	svc, err := NewGeocodeService(GeocodeServiceOptions{Geocoder: geo})
	require.NoError(t, err)
	return svc, geo
}

func TestNewGeocodeService_RequiresGeocoder(t *testing.T) {
	_, err := NewGeocodeService(GeocodeServiceOptions{})
	require.Error(t, err)
}

func TestGeocodeService_Search_AppendsRegionAndFilters(t *testing.T) {
	svc, geo := newGeocodeFixture(t)
	geo.EXPECT().Search(gomock.Any(), ports.GeocodeQuery{
		Text:     "Cầu Giấy, Hà Nội",
		ViewBox:  DefaultGeocodeViewBox,
		Language: DefaultGeocodeLanguage,
		Limit:    DefaultGeocodeLimit,
	}).Return([]ports.GeocodeResult{
		{Lat: 21.03, Lng: 105.79, DisplayName: "Cầu Giấy, Hà Nội, Việt Nam"},
		{Lat: 21.04, Lng: 105.80, DisplayName: "Dịch Vọng", City: "Hà Nội"},
		{Lat: 21.05, Lng: 105.81, DisplayName: "Some ward", State: "Hà Nội"},
		{Lat: 20.95, Lng: 106.00, DisplayName: "Hưng Yên, Việt Nam", State: "Hưng Yên"},
	}, nil)

	got, err := svc.Search(context.Background(), "  Cầu Giấy ")

	require.NoError(t, err)
	assert.Equal(t, []booking.Place{
		{Lat: 21.03, Lng: 105.79, Address: "Cầu Giấy, Hà Nội, Việt Nam"},
		{Lat: 21.04, Lng: 105.80, Address: "Dịch Vọng"},
		{Lat: 21.05, Lng: 105.81, Address: "Some ward"},
	}, got)
}

func TestGeocodeService_Search_KeepsQueryThatNamesRegion(t *testing.T) {
	svc, geo := newGeocodeFixture(t)
	geo.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q ports.GeocodeQuery) ([]ports.GeocodeResult, error) {
			assert.Equal(t, "Hoàn Kiếm, HÀ NỘI", q.Text)
			return nil, nil
		})

	got, err := svc.Search(context.Background(), "Hoàn Kiếm, HÀ NỘI")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGeocodeService_Search_BlankQuery(t *testing.T) {
	svc, _ := newGeocodeFixture(t)

	got, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGeocodeService_Search_Error(t *testing.T) {
	svc, geo := newGeocodeFixture(t)
	geo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("HTTP 503"))

	_, err := svc.Search(context.Background(), "Ba Đình")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
}
