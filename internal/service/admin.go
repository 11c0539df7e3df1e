package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/validation"
)

const (
	categoryNameMaxLen        = 100
	categorySlugMaxLen        = 100
	categoryDescriptionMaxLen = 500
	categoryIconMaxLen        = 50
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// AdminServiceOptions groups dependencies for AdminService.
type AdminServiceOptions struct {
	API    ports.AdminAPI
	Logger *slog.Logger
}

// AdminService backs the admin screens. Every call reads the bearer token from the caller's
// slot, and any rejection from the backend clears that slot and surfaces as an unauthorized error.
type AdminService struct {
	api    ports.AdminAPI
	logger *slog.Logger
}

// NewAdminService constructs a new AdminService.
func NewAdminService(opts AdminServiceOptions) *AdminService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{api: opts.API, logger: logger.With("component", "admin_service")}
}

// Dashboard returns the aggregate counts for the dashboard.
func (s *AdminService) Dashboard(ctx context.Context, slot ports.CredentialSlot) (booking.DashboardStats, error) {
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return booking.DashboardStats{}, err
	}
	stats, err := s.api.DashboardStats(ctx, cred)
	if err != nil {
		return booking.DashboardStats{}, s.protectedCallFailed(ctx, slot, err)
	}
	return stats, nil
}

// Categories lists all categories.
func (s *AdminService) Categories(ctx context.Context, slot ports.CredentialSlot) ([]booking.Category, error) {
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return nil, err
	}
	cats, err := s.api.ListCategories(ctx, cred)
	if err != nil {
		return nil, s.protectedCallFailed(ctx, slot, err)
	}
	return cats, nil
}

// SaveCategory creates a category when id is empty and updates it otherwise.
func (s *AdminService) SaveCategory(
	ctx context.Context,
	slot ports.CredentialSlot,
	id string,
	in booking.CategoryInput,
) (booking.Category, error) {
	in, err := NormalizeCategoryInput(in)
	if err != nil {
		return booking.Category{}, err
	}

	cred, err := s.credential(ctx, slot)
	if err != nil {
		return booking.Category{}, err
	}

	var cat booking.Category
	if id == "" {
		cat, err = s.api.CreateCategory(ctx, cred, in)
	} else {
		cat, err = s.api.UpdateCategory(ctx, cred, id, in)
	}
	if err != nil {
		return booking.Category{}, s.protectedCallFailed(ctx, slot, err)
	}
	return cat, nil
}

// DeleteCategory removes a category.
func (s *AdminService) DeleteCategory(ctx context.Context, slot ports.CredentialSlot, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("category id is required")
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return err
	}
	if err := s.api.DeleteCategory(ctx, cred, id); err != nil {
		return s.protectedCallFailed(ctx, slot, err)
	}
	return nil
}

// BookingsView is everything the bookings screen renders.
type BookingsView struct {
	Filter     booking.Status
	Bookings   []booking.Booking
	Categories []booking.Category
}

// Bookings lists bookings, optionally filtered by status, together with the categories used
// for the filter labels. Both lists are fetched concurrently.
func (s *AdminService) Bookings(ctx context.Context, slot ports.CredentialSlot, filter booking.Status) (BookingsView, error) {
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return BookingsView{}, err
	}

	view := BookingsView{Filter: filter}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Bookings, err = s.api.ListBookings(gctx, cred, filter)
		return err
	})
	g.Go(func() error {
		var err error
		view.Categories, err = s.api.ListCategories(gctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return BookingsView{}, s.protectedCallFailed(ctx, slot, err)
	}
	return view, nil
}

// UpdateBookingStatus moves a booking to next. The current status is read from the backend
// and the move must be one of the allowed transitions.
func (s *AdminService) UpdateBookingStatus(
	ctx context.Context,
	slot ports.CredentialSlot,
	id string,
	next booking.Status,
) error {
	if next == "" {
		return apperrors.Validation("target status is required")
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return err
	}

	all, err := s.api.ListBookings(ctx, cred, "")
	if err != nil {
		return s.protectedCallFailed(ctx, slot, err)
	}
	var current *booking.Booking
	for i := range all {
		if all[i].ID == id {
			current = &all[i]
			break
		}
	}
	if current == nil {
		return apperrors.NotFound("booking not found")
	}
	if !current.Status.CanTransition(next) {
		return apperrors.Validationf("cannot move booking from %s to %s", current.Status, next)
	}

	if err := s.api.UpdateBookingStatus(ctx, cred, id, next); err != nil {
		return s.protectedCallFailed(ctx, slot, err)
	}
	s.logger.InfoContext(ctx, "booking status updated", "booking_id", id, "from", current.Status, "to", next)
	return nil
}

func (s *AdminService) credential(ctx context.Context, slot ports.CredentialSlot) (domainauth.Credential, error) {
	return readCredential(ctx, slot)
}

func (s *AdminService) protectedCallFailed(ctx context.Context, slot ports.CredentialSlot, err error) error {
	return dropRejectedCredential(ctx, s.logger, slot, err)
}

// NormalizeCategoryInput trims the form values, derives a slug from the name when none is
// given, and validates the result.
func NormalizeCategoryInput(in booking.CategoryInput) (booking.CategoryInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	in.Description = strings.TrimSpace(in.Description)
	in.Icon = strings.TrimSpace(in.Icon)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}

	fv := validation.New().
		Validate("name", in.Name, validation.Required("Name", categoryNameMaxLen)).
		Validate("slug", in.Slug,
			validation.Required("Slug", categorySlugMaxLen),
			validation.Pattern("Slug", slugPattern)).
		Validate("description", in.Description, validation.Optional("Description", categoryDescriptionMaxLen)).
		Validate("icon", in.Icon, validation.Optional("Icon", categoryIconMaxLen))
	if err := apperrors.ValidationFields("Please correct the highlighted fields.", fv.Errors()); err != nil {
		return in, err
	}
	return in, nil
}

// Slugify turns a display name into a URL slug: accents are folded to ASCII, runs of anything
// that is not a letter or digit become a single hyphen.
func Slugify(name string) string {
	// A transform.Chain is stateful; it must not be shared between goroutines.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
