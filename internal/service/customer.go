package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/validation"
)

const (
	customerNameMaxLen = 100
	bookingNotesMaxLen = 500
)

var phonePattern = regexp.MustCompile(`^\+?[0-9 .()-]{8,20}$`)

// CustomerServiceOptions groups dependencies for CustomerService.
type CustomerServiceOptions struct {
	Catalog  ports.CatalogAPI
	Bookings ports.BookingAPI
	Logger   *slog.Logger
}

// CustomerService backs the end-user screens: browsing the catalog anonymously and, with a
// credential, requesting bookings and listing one's own.
type CustomerService struct {
	catalog  ports.CatalogAPI
	bookings ports.BookingAPI
	logger   *slog.Logger
}

// NewCustomerService constructs a CustomerService.
func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomerService{
		catalog:  opts.Catalog,
		bookings: opts.Bookings,
		logger:   logger.With("component", "customer_service"),
	}
}

// Categories lists the categories shown on the home screen.
func (s *CustomerService) Categories(ctx context.Context) ([]booking.Category, error) {
	return s.catalog.CatalogCategories(ctx)
}

// CategoryView is a category with its bookable courts.
type CategoryView struct {
	Category booking.Category
	Courts   []booking.Court
}

// CategoryCourts resolves a category by slug and lists its active courts.
func (s *CustomerService) CategoryCourts(ctx context.Context, slug string) (CategoryView, error) {
	slug = strings.TrimSpace(slug)
	if !slugPattern.MatchString(slug) {
		return CategoryView{}, apperrors.NotFound("category not found")
	}
	cat, err := s.catalog.CategoryBySlug(ctx, slug)
	if err != nil {
		return CategoryView{}, err
	}
	courts, err := s.catalog.CourtsInCategory(ctx, cat.ID)
	if err != nil {
		return CategoryView{}, err
	}
	return CategoryView{Category: cat, Courts: courts}, nil
}

// Court returns a single court with its category.
func (s *CustomerService) Court(ctx context.Context, id string) (booking.Court, error) {
	if strings.TrimSpace(id) == "" {
		return booking.Court{}, apperrors.NotFound("court not found")
	}
	return s.catalog.CourtByID(ctx, id)
}

// BookingForm carries the booking request form values as submitted.
type BookingForm struct {
	BookingDate   string
	StartTime     string
	EndTime       string
	CustomerName  string
	CustomerPhone string
	Notes         string
}

// RequestBooking validates the form, prices the slot at the court's hourly rate and submits
// a pending booking with the caller's credential. A rejected credential is cleared.
func (s *CustomerService) RequestBooking(
	ctx context.Context,
	slot ports.CredentialSlot,
	courtID string,
	form BookingForm,
) (booking.Booking, error) {
	req, err := ParseBookingForm(form)
	if err != nil {
		return booking.Booking{}, err
	}
	cred, err := readCredential(ctx, slot)
	if err != nil {
		return booking.Booking{}, err
	}

	court, err := s.Court(ctx, courtID)
	if err != nil {
		return booking.Booking{}, err
	}
	if !court.IsActive {
		return booking.Booking{}, apperrors.Validation("This court is not accepting bookings.")
	}
	req.CourtID = court.ID
	req.TotalPrice, err = booking.QuotePrice(req.BookingDate, req.StartTime, req.EndTime, court.PricePerHour)
	if err != nil {
		return booking.Booking{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid booking slot")
	}
	req.Status = booking.StatusPending

	created, err := s.bookings.RequestBooking(ctx, cred, req)
	if err != nil {
		return booking.Booking{}, dropRejectedCredential(ctx, s.logger, slot, err)
	}
	s.logger.InfoContext(ctx, "booking requested",
		"booking_id", created.ID, "court_id", court.ID, "date", req.BookingDate, "total_price", req.TotalPrice)
	return created, nil
}

// MyBookings lists the bookings made with the caller's credential.
func (s *CustomerService) MyBookings(ctx context.Context, slot ports.CredentialSlot) ([]booking.Booking, error) {
	cred, err := readCredential(ctx, slot)
	if err != nil {
		return nil, err
	}
	list, err := s.bookings.MyBookings(ctx, cred)
	if err != nil {
		return nil, dropRejectedCredential(ctx, s.logger, slot, err)
	}
	return list, nil
}

// ParseBookingForm trims and validates the booking form. Court, price and status are filled
// in by RequestBooking.
func ParseBookingForm(f BookingForm) (booking.BookingRequest, error) {
	req := booking.BookingRequest{
		BookingDate:   strings.TrimSpace(f.BookingDate),
		StartTime:     strings.TrimSpace(f.StartTime),
		EndTime:       strings.TrimSpace(f.EndTime),
		CustomerName:  strings.TrimSpace(f.CustomerName),
		CustomerPhone: strings.TrimSpace(f.CustomerPhone),
		Notes:         strings.TrimSpace(f.Notes),
	}
	errs := validateSlot(validation.New().
		Validate("customer_name", req.CustomerName, validation.Required("Name", customerNameMaxLen)).
		Validate("customer_phone", req.CustomerPhone,
			validation.Required("Phone number", shortFieldMaxLen),
			validation.Pattern("Phone number", phonePattern)).
		Validate("notes", req.Notes, validation.Optional("Notes", bookingNotesMaxLen)),
		"booking_date", req.BookingDate, req.StartTime, req.EndTime)
	if err := apperrors.ValidationFields("Please correct the highlighted fields.", errs); err != nil {
		return booking.BookingRequest{}, err
	}
	return req, nil
}
