package httpx

import (
	"net/http"
	"net/url"
	"testing"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bookingFormValues() url.Values {
	return url.Values{
		"booking_date":   {"2026-10-20"},
		"start_time":     {"18:00"},
		"end_time":       {"20:00"},
		"customer_name":  {"Trần Thị Bình"},
		"customer_phone": {"0912345678"},
	}
}

func TestCategoryPage_IsPublic(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})
	f.Catalog.EXPECT().CategoryBySlug(gomock.Any(), "cau-long").
		Return(booking.Category{ID: "c2", Name: "Cầu lông", Slug: "cau-long"}, nil)
	f.Catalog.EXPECT().CourtsInCategory(gomock.Any(), "c2").
		Return([]booking.Court{{ID: "k1", Name: "Sân A1", PricePerHour: 80000, IsActive: true}}, nil)

	rec := f.get("/category/cau-long")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ContainsAll(rec.Body.String(), []string{"Cầu lông", `href="/court/k1"`, "80.000 ₫"}))
	assert.Zero(t, f.Validator.Calls())
}

func TestCategoryPage_UnknownSlug(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})
	f.Catalog.EXPECT().CategoryBySlug(gomock.Any(), "golf").Return(booking.Category{}, apperrors.NotFound("not found"))

	rec := f.get("/category/golf")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCourtPage_ShowsBookingForm(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})
	f.Catalog.EXPECT().CourtByID(gomock.Any(), "k1").Return(booking.Court{
		ID: "k1", Name: "Sân A1", PricePerHour: 80000, IsActive: true,
		Category: booking.Category{Slug: "cau-long"},
	}, nil)

	rec := f.get("/court/k1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ContainsAll(rec.Body.String(), []string{
		`href="/category/cau-long"`,
		`action="/court/k1/bookings"`,
		`name="customer_phone"`,
	}))
}

func TestCourtPage_InactiveCourtHasNoForm(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})
	f.Catalog.EXPECT().CourtByID(gomock.Any(), "k1").Return(booking.Court{ID: "k1", Name: "Sân A1"}, nil)

	rec := f.get("/court/k1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `action="/court/k1/bookings"`)
	assert.Contains(t, rec.Body.String(), "This court is not accepting bookings.")
}

func TestRequestBooking_WithoutCredentialGoesToLogin(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.postForm("/court/k1/bookings", bookingFormValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.Zero(t, f.Validator.Calls())
}

func TestRequestBooking_Success(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Catalog.EXPECT().CourtByID(gomock.Any(), "k1").
		Return(booking.Court{ID: "k1", PricePerHour: 80000, IsActive: true}, nil)
	f.Bookings.EXPECT().RequestBooking(gomock.Any(), abc123, booking.BookingRequest{
		CourtID:       "k1",
		BookingDate:   "2026-10-20",
		StartTime:     "18:00",
		EndTime:       "20:00",
		CustomerName:  "Trần Thị Bình",
		CustomerPhone: "0912345678",
		TotalPrice:    160000,
		Status:        booking.StatusPending,
	}).Return(booking.Booking{ID: "b1"}, nil)

	rec := f.postForm("/court/k1/bookings", bookingFormValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, MyBookingsPath+"?requested=1", rec.Header().Get("Location"))
}

func TestRequestBooking_ValidationKeepsInput(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Catalog.EXPECT().CourtByID(gomock.Any(), "k1").
		Return(booking.Court{ID: "k1", Name: "Sân A1", PricePerHour: 80000, IsActive: true}, nil)
	form := bookingFormValues()
	form.Set("end_time", "17:00")

	rec := f.postForm("/court/k1/bookings", form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, ContainsAll(rec.Body.String(), []string{
		"End time must be after start time.",
		`value="Trần Thị Bình"`,
		`action="/court/k1/bookings"`,
	}))
}

func TestRequestBooking_RejectionClearsCredential(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Catalog.EXPECT().CourtByID(gomock.Any(), "k1").
		Return(booking.Court{ID: "k1", PricePerHour: 80000, IsActive: true}, nil)
	f.Bookings.EXPECT().RequestBooking(gomock.Any(), abc123, gomock.Any()).
		Return(booking.Booking{}, domainauth.ErrCredentialRejected)

	rec := f.postForm("/court/k1/bookings", bookingFormValues())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.True(t, f.Store.Shared.Peek().IsZero())
}

func TestMyBookings(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{Credential: abc123})
	f.Bookings.EXPECT().MyBookings(gomock.Any(), abc123).Return([]booking.Booking{{
		ID: "b1", BookingDate: "2026-10-20", StartTime: "18:00", EndTime: "20:00",
		TotalPrice: 160000, Status: booking.StatusPending, Court: booking.CourtRef{Name: "Sân A1"},
	}}, nil)

	rec := f.get(MyBookingsPath + "?requested=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ContainsAll(rec.Body.String(), []string{
		"Booking requested.",
		"Sân A1",
		"160.000 ₫",
		"status-pending",
	}))
}

func TestMyBookings_RequiresCredential(t *testing.T) {
	f := newRouterFixture(t, fixtureOptions{})

	rec := f.get(MyBookingsPath)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}
