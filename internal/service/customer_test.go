package service

import (
	"context"
	"errors"
	"testing"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/mocks"
	authmocks "github.com/sportbooking/sportbook-web/internal/mocks/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type customerFixture struct {
	svc      *CustomerService
	catalog  *mocks.MockCatalogAPI
	bookings *mocks.MockBookingAPI
	slot     *authmocks.MemorySlot
}

func newCustomerFixture(t *testing.T) customerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogAPI(ctrl)
	bookings := mocks.NewMockBookingAPI(ctrl)
	return customerFixture{
		svc:      NewCustomerService(CustomerServiceOptions{Catalog: catalog, Bookings: bookings}),
		catalog:  catalog,
		bookings: bookings,
		slot:     authmocks.NewMemorySlot(testToken),
	}
}

func validBookingForm() BookingForm {
	return BookingForm{
		BookingDate:   "2026-10-20",
		StartTime:     "18:00",
		EndTime:       "19:30",
		CustomerName:  " Nguyễn Văn An ",
		CustomerPhone: "0901 234 567",
	}
}

func TestCustomerService_CategoryCourts(t *testing.T) {
	f := newCustomerFixture(t)
	cat := booking.Category{ID: "c1", Slug: "tennis"}
	courts := []booking.Court{{ID: "k1", CategoryID: "c1", IsActive: true}}
	f.catalog.EXPECT().CategoryBySlug(gomock.Any(), "tennis").Return(cat, nil)
	f.catalog.EXPECT().CourtsInCategory(gomock.Any(), "c1").Return(courts, nil)

	view, err := f.svc.CategoryCourts(context.Background(), "tennis")

	require.NoError(t, err)
	assert.Equal(t, cat, view.Category)
	assert.Equal(t, courts, view.Courts)
}

func TestCustomerService_CategoryCourts_MalformedSlugIsNotFound(t *testing.T) {
	f := newCustomerFixture(t)
	f.catalog.EXPECT().CategoryBySlug(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.CategoryCourts(context.Background(), "../admin")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestCustomerService_RequestBooking(t *testing.T) {
	f := newCustomerFixture(t)
	f.catalog.EXPECT().CourtByID(gomock.Any(), "k1").
		Return(booking.Court{ID: "k1", PricePerHour: 120000, IsActive: true}, nil)
	f.bookings.EXPECT().RequestBooking(gomock.Any(), testToken, booking.BookingRequest{
		CourtID:       "k1",
		BookingDate:   "2026-10-20",
		StartTime:     "18:00",
		EndTime:       "19:30",
		CustomerName:  "Nguyễn Văn An",
		CustomerPhone: "0901 234 567",
		TotalPrice:    180000,
		Status:        booking.StatusPending,
	}).Return(booking.Booking{ID: "b1", Status: booking.StatusPending}, nil)

	created, err := f.svc.RequestBooking(context.Background(), f.slot, "k1", validBookingForm())

	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
}

func TestCustomerService_RequestBooking_NoCredential(t *testing.T) {
	f := newCustomerFixture(t)
	f.catalog.EXPECT().CourtByID(gomock.Any(), gomock.Any()).Times(0)
	f.bookings.EXPECT().RequestBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.RequestBooking(context.Background(), authmocks.NewMemorySlot(""), "k1", validBookingForm())

	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestCustomerService_RequestBooking_InactiveCourt(t *testing.T) {
	f := newCustomerFixture(t)
	f.catalog.EXPECT().CourtByID(gomock.Any(), "k1").Return(booking.Court{ID: "k1", IsActive: false}, nil)
	f.bookings.EXPECT().RequestBooking(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.RequestBooking(context.Background(), f.slot, "k1", validBookingForm())

	assert.True(t, apperrors.IsValidation(err))
}

func TestCustomerService_RequestBooking_RejectionClearsCredential(t *testing.T) {
	f := newCustomerFixture(t)
	f.catalog.EXPECT().CourtByID(gomock.Any(), "k1").
		Return(booking.Court{ID: "k1", PricePerHour: 100000, IsActive: true}, nil)
	f.bookings.EXPECT().RequestBooking(gomock.Any(), testToken, gomock.Any()).
		Return(booking.Booking{}, domainauth.ErrCredentialRejected)

	_, err := f.svc.RequestBooking(context.Background(), f.slot, "k1", validBookingForm())

	assert.True(t, apperrors.IsUnauthorized(err))
	assert.True(t, f.slot.Peek().IsZero())
}

func TestParseBookingForm(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BookingForm)
		want   map[string]string
	}{
		{"empty slot", func(f *BookingForm) { f.EndTime = f.StartTime },
			map[string]string{"end_time": "End time must be after start time."}},
		{"bad phone", func(f *BookingForm) { f.CustomerPhone = "call me" },
			map[string]string{"customer_phone": "Phone number has an invalid format."}},
		{"missing name and date", func(f *BookingForm) { f.CustomerName, f.BookingDate = "", "" },
			map[string]string{"customer_name": "Name is required.", "booking_date": "Date is required."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validBookingForm()
			tt.modify(&form)

			_, err := ParseBookingForm(form)

			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.GetFields(err))
		})
	}
}

func TestCustomerService_MyBookings(t *testing.T) {
	t.Run("lists", func(t *testing.T) {
		f := newCustomerFixture(t)
		want := []booking.Booking{{ID: "b1"}}
		f.bookings.EXPECT().MyBookings(gomock.Any(), testToken).Return(want, nil)

		got, err := f.svc.MyBookings(context.Background(), f.slot)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("outage keeps the credential", func(t *testing.T) {
		f := newCustomerFixture(t)
		outage := apperrors.Wrap(errors.New("dial tcp: refused"), apperrors.ErrCodeUnavailable, "backend unavailable")
		f.bookings.EXPECT().MyBookings(gomock.Any(), testToken).Return(nil, outage)

		_, err := f.svc.MyBookings(context.Background(), f.slot)

		assert.True(t, apperrors.IsUnavailable(err))
		assert.Equal(t, testToken, f.slot.Peek())
	})
}
