package backend

import (
	"context"
	"net/http"
	"net/url"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	"github.com/sportbooking/sportbook-web/internal/ports"
)

var (
	_ ports.CatalogAPI = (*Client)(nil)
	_ ports.BookingAPI = (*Client)(nil)
)

// CatalogCategories fetches the public category list.
func (c *Client) CatalogCategories(ctx context.Context) ([]booking.Category, error) {
	var out listOf[booking.Category]
	if err := c.do(ctx, call{method: http.MethodGet, path: "categories", out: &out, idempotent: true}); err != nil {
		return nil, err
	}
	return out.items, nil
}

// CategoryBySlug fetches one category by its URL slug.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (booking.Category, error) {
	var out itemOf[booking.Category]
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "categories/" + url.PathEscape(slug),
		out:        &out,
		idempotent: true,
	})
	return out.item, err
}

// CourtsInCategory fetches the active courts of a category, ordered by name.
func (c *Client) CourtsInCategory(ctx context.Context, categoryID string) ([]booking.Court, error) {
	var out listOf[booking.Court]
	err := c.do(ctx, call{
		method:     http.MethodGet,
		path:       "courts",
		query:      url.Values{"category_id": {categoryID}, "active": {"true"}},
		out:        &out,
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return out.items, nil
}

// CourtByID fetches one court with its category.
func (c *Client) CourtByID(ctx context.Context, id string) (booking.Court, error) {
	var out itemOf[booking.Court]
	err := c.do(ctx, call{method: http.MethodGet, path: "courts/" + url.PathEscape(id), out: &out, idempotent: true})
	return out.item, err
}

// RequestBooking submits a booking request on behalf of the credential's owner.
func (c *Client) RequestBooking(
	ctx context.Context,
	cred domainauth.Credential,
	in booking.BookingRequest,
) (booking.Booking, error) {
	var out itemOf[booking.Booking]
	err := c.do(ctx, call{method: http.MethodPost, path: "bookings", cred: cred, body: in, out: &out})
	return out.item, err
}

// MyBookings fetches the bookings of the credential's owner, latest first.
func (c *Client) MyBookings(ctx context.Context, cred domainauth.Credential) ([]booking.Booking, error) {
	var out listOf[booking.Booking]
	if err := c.do(ctx, call{method: http.MethodGet, path: "bookings/mine", cred: cred, out: &out, idempotent: true}); err != nil {
		return nil, err
	}
	return out.items, nil
}
