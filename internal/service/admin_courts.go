package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/validation"
)

const (
	courtNameMaxLen         = 100
	courtDescriptionMaxLen  = 1000
	courtImageURLMaxLen     = 500
	maintenanceReasonMaxLen = 500
	idMaxLen                = 64
	shortFieldMaxLen        = 32
	maxPricePerHour         = 1e9
)

var httpURLPattern = regexp.MustCompile(`^https?://\S+$`)

// CourtForm carries the court form values as submitted.
type CourtForm struct {
	Name         string
	Description  string
	ImageURL     string
	PricePerHour string
	Latitude     string
	Longitude    string
	CategoryID   string
	IsActive     bool
}

// CourtsView is everything the courts screen renders.
type CourtsView struct {
	Courts     []booking.Court
	Categories []booking.Category
}

// Courts lists every court together with the categories offered in the court form.
// Both lists are fetched concurrently.
func (s *AdminService) Courts(ctx context.Context, slot ports.CredentialSlot) (CourtsView, error) {
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return CourtsView{}, err
	}

	var view CourtsView
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Courts, err = s.api.ListCourts(gctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		view.Categories, err = s.api.ListCategories(gctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return CourtsView{}, s.protectedCallFailed(ctx, slot, err)
	}
	return view, nil
}

// SaveCourt creates a court when id is empty and updates it otherwise.
func (s *AdminService) SaveCourt(
	ctx context.Context,
	slot ports.CredentialSlot,
	id string,
	form CourtForm,
) (booking.Court, error) {
	in, err := ParseCourtForm(form)
	if err != nil {
		return booking.Court{}, err
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return booking.Court{}, err
	}

	var court booking.Court
	if id == "" {
		court, err = s.api.CreateCourt(ctx, cred, in)
	} else {
		court, err = s.api.UpdateCourt(ctx, cred, id, in)
	}
	if err != nil {
		return booking.Court{}, s.protectedCallFailed(ctx, slot, err)
	}
	return court, nil
}

// DeleteCourt removes a court.
func (s *AdminService) DeleteCourt(ctx context.Context, slot ports.CredentialSlot, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("court id is required")
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return err
	}
	if err := s.api.DeleteCourt(ctx, cred, id); err != nil {
		return s.protectedCallFailed(ctx, slot, err)
	}
	return nil
}

// ParseCourtForm trims and validates the court form and converts it to the backend payload.
// Coordinates are optional but must be given together.
func ParseCourtForm(f CourtForm) (booking.CourtInput, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.PricePerHour = strings.TrimSpace(f.PricePerHour)
	f.Latitude = strings.TrimSpace(f.Latitude)
	f.Longitude = strings.TrimSpace(f.Longitude)
	f.CategoryID = strings.TrimSpace(f.CategoryID)

	fv := validation.New().
		Validate("name", f.Name, validation.Required("Name", courtNameMaxLen)).
		Validate("description", f.Description, validation.Optional("Description", courtDescriptionMaxLen)).
		Validate("image_url", f.ImageURL,
			validation.Optional("Image URL", courtImageURLMaxLen),
			validation.Pattern("Image URL", httpURLPattern)).
		Validate("price_per_hour", f.PricePerHour,
			validation.Required("Price per hour", shortFieldMaxLen),
			validation.Number("Price per hour", 0, maxPricePerHour)).
		Validate("latitude", f.Latitude, validation.Number("Latitude", -90, 90)).
		Validate("longitude", f.Longitude, validation.Number("Longitude", -180, 180)).
		Validate("category_id", f.CategoryID, validation.Required("Category", idMaxLen))
	errs := fv.Errors()
	if (f.Latitude == "") != (f.Longitude == "") {
		if f.Latitude == "" {
			errs["latitude"] = "Latitude is required when longitude is set."
		} else if _, ok := errs["longitude"]; !ok {
			errs["longitude"] = "Longitude is required when latitude is set."
		}
	}
	if err := apperrors.ValidationFields("Please correct the highlighted fields.", errs); err != nil {
		return booking.CourtInput{}, err
	}

	price, _ := strconv.ParseFloat(f.PricePerHour, 64)
	return booking.CourtInput{
		Name:         f.Name,
		Description:  f.Description,
		ImageURL:     f.ImageURL,
		PricePerHour: price,
		Latitude:     optionalFloat(f.Latitude),
		Longitude:    optionalFloat(f.Longitude),
		IsActive:     f.IsActive,
		CategoryID:   f.CategoryID,
	}, nil
}

func optionalFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// MaintenanceView is everything the maintenance screen renders.
type MaintenanceView struct {
	Blocks []booking.MaintenanceBlock
	// Courts are the active courts a new block can be scheduled on.
	Courts []booking.Court
}

// Maintenance lists the maintenance blocks and the active courts for the scheduling form.
func (s *AdminService) Maintenance(ctx context.Context, slot ports.CredentialSlot) (MaintenanceView, error) {
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return MaintenanceView{}, err
	}

	var (
		view   MaintenanceView
		courts []booking.Court
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Blocks, err = s.api.ListMaintenance(gctx, cred)
		return err
	})
	g.Go(func() error {
		var err error
		courts, err = s.api.ListCourts(gctx, cred)
		return err
	})
	if err := g.Wait(); err != nil {
		return MaintenanceView{}, s.protectedCallFailed(ctx, slot, err)
	}
	for _, c := range courts {
		if c.IsActive {
			view.Courts = append(view.Courts, c)
		}
	}
	return view, nil
}

// MaintenanceForm carries the maintenance form values as submitted.
type MaintenanceForm struct {
	CourtID   string
	BlockDate string
	StartTime string
	EndTime   string
	Reason    string
}

// ScheduleMaintenance validates the form and creates a maintenance block.
func (s *AdminService) ScheduleMaintenance(
	ctx context.Context,
	slot ports.CredentialSlot,
	form MaintenanceForm,
) (booking.MaintenanceBlock, error) {
	in, err := ParseMaintenanceForm(form)
	if err != nil {
		return booking.MaintenanceBlock{}, err
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return booking.MaintenanceBlock{}, err
	}
	block, err := s.api.CreateMaintenance(ctx, cred, in)
	if err != nil {
		return booking.MaintenanceBlock{}, s.protectedCallFailed(ctx, slot, err)
	}
	s.logger.InfoContext(ctx, "maintenance scheduled", "court_id", in.CourtID, "date", in.BlockDate)
	return block, nil
}

// DeleteMaintenance removes a maintenance block.
func (s *AdminService) DeleteMaintenance(ctx context.Context, slot ports.CredentialSlot, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.Validation("maintenance id is required")
	}
	cred, err := s.credential(ctx, slot)
	if err != nil {
		return err
	}
	if err := s.api.DeleteMaintenance(ctx, cred, id); err != nil {
		return s.protectedCallFailed(ctx, slot, err)
	}
	return nil
}

// ParseMaintenanceForm trims and validates the maintenance form.
func ParseMaintenanceForm(f MaintenanceForm) (booking.MaintenanceInput, error) {
	in := booking.MaintenanceInput{
		CourtID:   strings.TrimSpace(f.CourtID),
		BlockDate: strings.TrimSpace(f.BlockDate),
		StartTime: strings.TrimSpace(f.StartTime),
		EndTime:   strings.TrimSpace(f.EndTime),
		Reason:    strings.TrimSpace(f.Reason),
	}
	errs := validateSlot(validation.New().
		Validate("court_id", in.CourtID, validation.Required("Court", idMaxLen)).
		Validate("reason", in.Reason, validation.Optional("Reason", maintenanceReasonMaxLen)),
		"block_date", in.BlockDate, in.StartTime, in.EndTime)
	if err := apperrors.ValidationFields("Please correct the highlighted fields.", errs); err != nil {
		return booking.MaintenanceInput{}, err
	}
	return in, nil
}

// validateSlot adds the date and time-range checks shared by maintenance blocks and booking
// requests to fv and returns the accumulated field errors.
func validateSlot(fv *validation.FieldValidator, dateField, date, start, end string) map[string]string {
	fv.Validate(dateField, date,
		validation.Required("Date", shortFieldMaxLen),
		validation.TimeLayout("Date", booking.DateLayout)).
		Validate("start_time", start,
			validation.Required("Start time", shortFieldMaxLen),
			validation.TimeLayout("Start time", booking.TimeLayout)).
		Validate("end_time", end,
			validation.Required("End time", shortFieldMaxLen),
			validation.TimeLayout("End time", booking.TimeLayout))
	errs := fv.Errors()
	if len(errs) > 0 {
		return errs
	}
	if _, err := booking.SlotHours(date, start, end); errors.Is(err, booking.ErrEmptySlot) {
		errs["end_time"] = "End time must be after start time."
	}
	return errs
}
