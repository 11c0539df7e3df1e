// Package mocks provides mock implementations of the backend-facing ports for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the interfaces in
// internal/ports. The mocks are generated using go:generate directives and provide a fluent API
// for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockAdminAPI(ctrl)
//	api.EXPECT().DashboardStats(gomock.Any(), gomock.Any()).Return(stats, nil)
package mocks

// Generate mock for AdminAPI interface from internal/ports package.
// This creates MockAdminAPI with methods for all AdminAPI interface methods:
// DashboardStats, categories, bookings, courts and maintenance blocks
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=admin_api_mock.go github.com/sportbooking/sportbook-web/internal/ports AdminAPI

// Generate mock for CatalogAPI interface from internal/ports package.
// This creates MockCatalogAPI with methods for all CatalogAPI interface methods:
// CatalogCategories, CategoryBySlug, CourtsInCategory, CourtByID
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=catalog_api_mock.go github.com/sportbooking/sportbook-web/internal/ports CatalogAPI

// Generate mock for BookingAPI interface from internal/ports package.
// This creates MockBookingAPI with methods for all BookingAPI interface methods:
// RequestBooking, MyBookings
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=booking_api_mock.go github.com/sportbooking/sportbook-web/internal/ports BookingAPI

// Generate mock for CredentialValidator interface from internal/ports package.
// This creates MockCredentialValidator with methods for all CredentialValidator interface methods:
// Validate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=credential_validator_mock.go github.com/sportbooking/sportbook-web/internal/ports CredentialValidator

// Generate mock for Authenticator interface from internal/ports package.
// This creates MockAuthenticator with methods for all Authenticator interface methods:
// Login, Register, Logout
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=authenticator_mock.go github.com/sportbooking/sportbook-web/internal/ports Authenticator

// Generate mock for Geocoder interface from internal/ports package.
// This creates MockGeocoder with methods for all Geocoder interface methods:
// Search
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=geocoder_mock.go github.com/sportbooking/sportbook-web/internal/ports Geocoder
