package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
)

func TestClient_Catalog_IsAnonymous(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/categories":
			_, _ = w.Write([]byte(`[{"id":"c1","name":"Cầu lông","slug":"cau-long"}]`))
		case "/api/categories/cau-long":
			_, _ = w.Write([]byte(`{"data":{"id":"c1","name":"Cầu lông","slug":"cau-long"}}`))
		case "/api/courts":
			assert.Equal(t, "c1", r.URL.Query().Get("category_id"))
			assert.Equal(t, "true", r.URL.Query().Get("active"))
			_, _ = w.Write([]byte(`[{"id":"k1","name":"Sân A","price_per_hour":80000,"is_active":true}]`))
		case "/api/courts/k1":
			_, _ = w.Write([]byte(`{"id":"k1","name":"Sân A","price_per_hour":80000,"categories":{"name":"Cầu lông"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	cats, err := c.CatalogCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, 1)

	cat, err := c.CategoryBySlug(ctx, "cau-long")
	require.NoError(t, err)
	assert.Equal(t, "c1", cat.ID)

	courts, err := c.CourtsInCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Len(t, courts, 1)

	court, err := c.CourtByID(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Cầu lông", court.Category.Name)

	_, err = c.CourtByID(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClient_RequestBooking(t *testing.T) {
	req := booking.BookingRequest{
		CourtID:       "k1",
		BookingDate:   "2025-03-01",
		StartTime:     "08:00",
		EndTime:       "10:00",
		CustomerName:  "Nguyễn Văn A",
		CustomerPhone: "0912345678",
		TotalPrice:    160000,
		Status:        booking.StatusPending,
	}
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
		var got booking.BookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, req, got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b7","status":"pending"}`))
	}))

	b, err := c.RequestBooking(context.Background(), "abc123", req)

	require.NoError(t, err)
	assert.Equal(t, "b7", b.ID)
	assert.Equal(t, booking.StatusPending, b.Status)
}

func TestClient_MyBookings_Rejected(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings/mine", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.MyBookings(context.Background(), "expired")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainauth.ErrCredentialRejected)
	assert.True(t, apperrors.IsUnauthorized(err))
}
