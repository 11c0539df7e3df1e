// Package nominatim implements ports.Geocoder against an OpenStreetMap Nominatim server.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/sportbooking/sportbook-web/internal/ports"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org/"
	// The public instance allows one request per second.
	defaultRate    = 1.0
	defaultTimeout = 5 * time.Second
	maxBodyBytes   = 1 << 20
)

// Options configures Geocoder.
type Options struct {
	BaseURL    string        // Optional: defaults to DefaultBaseURL
	UserAgent  string        // Required by the Nominatim usage policy
	Referer    string        // Optional
	RateLimit  float64       // Optional: requests per second, defaults to 1
	Timeout    time.Duration // Optional: defaults to 5s
	MaxRetries int           // Optional
	HTTPClient *http.Client  // Optional: defaults to a cleanhttp pooled client
	Logger     *slog.Logger  // Optional
}

// Geocoder searches addresses through Nominatim.
type Geocoder struct {
	searchURL  *url.URL
	userAgent  string
	referer    string
	limiter    *rate.Limiter
	timeout    time.Duration
	maxRetries int
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ports.Geocoder = (*Geocoder)(nil)

// NewGeocoder creates a Nominatim geocoder.
func NewGeocoder(opts Options) (*Geocoder, error) {
	raw := opts.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	base, err := url.Parse(raw)
	if err != nil || !base.IsAbs() {
		return nil, fmt.Errorf("invalid nominatim url %q", raw)
	}
	if opts.UserAgent == "" {
		return nil, fmt.Errorf("nominatim requires a user agent")
	}

	g := &Geocoder{
		searchURL:  base.JoinPath("search"),
		userAgent:  opts.UserAgent,
		referer:    opts.Referer,
		timeout:    opts.Timeout,
		maxRetries: max(opts.MaxRetries, 0),
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}
	r := opts.RateLimit
	if r <= 0 {
		r = defaultRate
	}
	g.limiter = rate.NewLimiter(rate.Limit(r), 1)
	if g.timeout <= 0 {
		g.timeout = defaultTimeout
	}
	if g.httpClient == nil {
		g.httpClient = cleanhttp.DefaultPooledClient()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	g.logger = g.logger.With("component", "nominatim")
	return g, nil
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"address"`
}

// Search runs a bounded Nominatim search.
func (g *Geocoder) Search(ctx context.Context, q ports.GeocodeQuery) ([]ports.GeocodeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("nominatim rate limit: %w", err)
	}

	params := url.Values{
		"q":              {q.Text},
		"format":         {"json"},
		"addressdetails": {"1"},
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.ViewBox != "" {
		params.Set("viewbox", q.ViewBox)
		params.Set("bounded", "1")
	}
	if q.Language != "" {
		params.Set("accept-language", q.Language)
	}
	u := *g.searchURL
	u.RawQuery = params.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)
	if g.referer != "" {
		req.Header.Set("Referer", g.referer)
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = g.httpClient
	client.RetryMax = g.maxRetries
	client.Logger = g.logger
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: HTTP %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&places); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}

	out := make([]ports.GeocodeResult, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			g.logger.DebugContext(ctx, "skipping place with bad coordinates", "display_name", p.DisplayName)
			continue
		}
		out = append(out, ports.GeocodeResult{
			Lat:         lat,
			Lng:         lng,
			DisplayName: p.DisplayName,
			City:        p.Address.City,
			State:       p.Address.State,
		})
	}
	return out, nil
}
