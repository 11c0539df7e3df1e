package ports

import (
	"context"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
)

// AdminAPI is the bearer-authenticated admin surface of the backend.
// Calls answered with 401/403 return an error wrapping domainauth.ErrCredentialRejected.
type AdminAPI interface {
	DashboardStats(ctx context.Context, cred domainauth.Credential) (booking.DashboardStats, error)
	ListCategories(ctx context.Context, cred domainauth.Credential) ([]booking.Category, error)
	CreateCategory(ctx context.Context, cred domainauth.Credential, in booking.CategoryInput) (booking.Category, error)
	UpdateCategory(ctx context.Context, cred domainauth.Credential, id string, in booking.CategoryInput) (booking.Category, error)
	DeleteCategory(ctx context.Context, cred domainauth.Credential, id string) error
	ListBookings(ctx context.Context, cred domainauth.Credential, status booking.Status) ([]booking.Booking, error)
	UpdateBookingStatus(ctx context.Context, cred domainauth.Credential, id string, status booking.Status) error
	ListCourts(ctx context.Context, cred domainauth.Credential) ([]booking.Court, error)
	CreateCourt(ctx context.Context, cred domainauth.Credential, in booking.CourtInput) (booking.Court, error)
	UpdateCourt(ctx context.Context, cred domainauth.Credential, id string, in booking.CourtInput) (booking.Court, error)
	DeleteCourt(ctx context.Context, cred domainauth.Credential, id string) error
	ListMaintenance(ctx context.Context, cred domainauth.Credential) ([]booking.MaintenanceBlock, error)
	CreateMaintenance(ctx context.Context, cred domainauth.Credential, in booking.MaintenanceInput) (booking.MaintenanceBlock, error)
	DeleteMaintenance(ctx context.Context, cred domainauth.Credential, id string) error
}

// CatalogAPI is the public, unauthenticated read surface of the backend that customers
// browse before booking.
type CatalogAPI interface {
	CatalogCategories(ctx context.Context) ([]booking.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (booking.Category, error)
	CourtsInCategory(ctx context.Context, categoryID string) ([]booking.Court, error)
	CourtByID(ctx context.Context, id string) (booking.Court, error)
}

// BookingAPI is the customer's bearer-authenticated booking surface.
// Calls answered with 401/403 return an error wrapping domainauth.ErrCredentialRejected.
type BookingAPI interface {
	RequestBooking(ctx context.Context, cred domainauth.Credential, in booking.BookingRequest) (booking.Booking, error)
	MyBookings(ctx context.Context, cred domainauth.Credential) ([]booking.Booking, error)
}

// GeocodeQuery is a bounded address search.
type GeocodeQuery struct {
	Text     string
	ViewBox  string
	Language string
	Limit    int
}

// GeocodeResult is one raw geocoder hit before region filtering.
type GeocodeResult struct {
	Lat         float64
	Lng         float64
	DisplayName string
	City        string
	State       string
}

// Geocoder resolves free-form addresses to coordinates.
type Geocoder interface {
	Search(ctx context.Context, q GeocodeQuery) ([]GeocodeResult, error)
}
