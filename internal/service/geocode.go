package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

// Defaults for the address search, bounding results to Hanoi.
const (
	DefaultGeocodeRegion   = "Hà Nội"
	DefaultGeocodeViewBox  = "105.5,21.3,106.1,20.7"
	DefaultGeocodeLanguage = "vi"
	DefaultGeocodeLimit    = 5
)

// GeocodeServiceOptions groups dependencies for GeocodeService.
type GeocodeServiceOptions struct {
	Geocoder ports.Geocoder
	Region   string // Optional: defaults to DefaultGeocodeRegion
	ViewBox  string // Optional: defaults to DefaultGeocodeViewBox
	Language string // Optional: defaults to DefaultGeocodeLanguage
	Limit    int    // Optional: defaults to DefaultGeocodeLimit
	Logger   *slog.Logger
}

// GeocodeService searches addresses inside a single administrative region.
type GeocodeService struct {
	geocoder ports.Geocoder
	region   string
	viewBox  string
	language string
	limit    int
	logger   *slog.Logger
}

// NewGeocodeService constructs a new GeocodeService.
func NewGeocodeService(opts GeocodeServiceOptions) (*GeocodeService, error) {
	if opts.Geocoder == nil {
		return nil, errors.New("Geocoder is required")
	}
	s := &GeocodeService{
		geocoder: opts.Geocoder,
		region:   opts.Region,
		viewBox:  opts.ViewBox,
		language: opts.Language,
		limit:    opts.Limit,
		logger:   opts.Logger,
	}
	if s.region == "" {
		s.region = DefaultGeocodeRegion
	}
	if s.viewBox == "" {
		s.viewBox = DefaultGeocodeViewBox
	}
	if s.language == "" {
		s.language = DefaultGeocodeLanguage
	}
	if s.limit <= 0 {
		s.limit = DefaultGeocodeLimit
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "geocode_service")
	return s, nil
}

// Search resolves a free-form address. A blank query returns no places without calling
// the geocoder. Hits outside the region are dropped.
func (s *GeocodeService) Search(ctx context.Context, query string) ([]booking.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []booking.Place{}, nil
	}

	text := query
	if !strings.Contains(strings.ToLower(query), strings.ToLower(s.region)) {
		text = query + ", " + s.region
	}

	hits, err := s.geocoder.Search(ctx, ports.GeocodeQuery{
		Text:     text,
		ViewBox:  s.viewBox,
		Language: s.language,
		Limit:    s.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	places := make([]booking.Place, 0, len(hits))
	for _, h := range hits {
		if !s.inRegion(h) {
			continue
		}
		places = append(places, booking.Place{Lat: h.Lat, Lng: h.Lng, Address: h.DisplayName})
	}
	s.logger.DebugContext(ctx, "geocode search", "hits", len(hits), "kept", len(places))
	return places, nil
}

func (s *GeocodeService) inRegion(h ports.GeocodeResult) bool {
	return strings.Contains(h.DisplayName, s.region) || h.City == s.region || h.State == s.region
}
