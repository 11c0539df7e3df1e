package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	domainauth "github.com/sportbooking/sportbook-web/internal/domain/auth"
	"github.com/sportbooking/sportbook-web/internal/domain/booking"
)

// DashboardStats fetches the aggregate counts.
func (c *Client) DashboardStats(ctx context.Context, cred domainauth.Credential) (booking.DashboardStats, error) {
	var stats booking.DashboardStats
	err := c.do(ctx, call{method: http.MethodGet, path: "admin/dashboard", cred: cred, out: &stats, idempotent: true})
	return stats, err
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context, cred domainauth.Credential) ([]booking.Category, error) {
	var out listOf[booking.Category]
	if err := c.do(ctx, call{method: http.MethodGet, path: "admin/categories", cred: cred, out: &out, idempotent: true}); err != nil {
		return nil, err
	}
	return out.items, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(
	ctx context.Context,
	cred domainauth.Credential,
	in booking.CategoryInput,
) (booking.Category, error) {
	var out itemOf[booking.Category]
	err := c.do(ctx, call{method: http.MethodPost, path: "admin/categories", cred: cred, body: in, out: &out})
	return out.item, err
}

// UpdateCategory replaces a category.
func (c *Client) UpdateCategory(
	ctx context.Context,
	cred domainauth.Credential,
	id string,
	in booking.CategoryInput,
) (booking.Category, error) {
	var out itemOf[booking.Category]
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "admin/categories/" + url.PathEscape(id),
		cred:       cred,
		body:       in,
		out:        &out,
		idempotent: true,
	})
	return out.item, err
}

// DeleteCategory deletes a category.
func (c *Client) DeleteCategory(ctx context.Context, cred domainauth.Credential, id string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "admin/categories/" + url.PathEscape(id),
		cred:       cred,
		idempotent: true,
	})
}

// ListBookings fetches bookings, newest first, optionally filtered by status.
func (c *Client) ListBookings(
	ctx context.Context,
	cred domainauth.Credential,
	status booking.Status,
) ([]booking.Booking, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {string(status)}}
	}
	var out listOf[booking.Booking]
	err := c.do(ctx, call{method: http.MethodGet, path: "admin/bookings", query: q, cred: cred, out: &out, idempotent: true})
	if err != nil {
		return nil, err
	}
	return out.items, nil
}

type statusUpdate struct {
	Status booking.Status `json:"status"`
}

// UpdateBookingStatus sets a booking's status.
func (c *Client) UpdateBookingStatus(
	ctx context.Context,
	cred domainauth.Credential,
	id string,
	status booking.Status,
) error {
	return c.do(ctx, call{
		method:     http.MethodPatch,
		path:       "admin/bookings/" + url.PathEscape(id) + "/status",
		cred:       cred,
		body:       statusUpdate{Status: status},
		idempotent: true,
	})
}

// ListCourts fetches every court, active or not, newest first.
func (c *Client) ListCourts(ctx context.Context, cred domainauth.Credential) ([]booking.Court, error) {
	var out listOf[booking.Court]
	if err := c.do(ctx, call{method: http.MethodGet, path: "admin/courts", cred: cred, out: &out, idempotent: true}); err != nil {
		return nil, err
	}
	return out.items, nil
}

// CreateCourt creates a court.
func (c *Client) CreateCourt(ctx context.Context, cred domainauth.Credential, in booking.CourtInput) (booking.Court, error) {
	var out itemOf[booking.Court]
	err := c.do(ctx, call{method: http.MethodPost, path: "admin/courts", cred: cred, body: in, out: &out})
	return out.item, err
}

// UpdateCourt replaces a court.
func (c *Client) UpdateCourt(
	ctx context.Context,
	cred domainauth.Credential,
	id string,
	in booking.CourtInput,
) (booking.Court, error) {
	var out itemOf[booking.Court]
	err := c.do(ctx, call{
		method:     http.MethodPut,
		path:       "admin/courts/" + url.PathEscape(id),
		cred:       cred,
		body:       in,
		out:        &out,
		idempotent: true,
	})
	return out.item, err
}

// DeleteCourt deletes a court.
func (c *Client) DeleteCourt(ctx context.Context, cred domainauth.Credential, id string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "admin/courts/" + url.PathEscape(id),
		cred:       cred,
		idempotent: true,
	})
}

// ListMaintenance fetches maintenance blocks, latest first.
func (c *Client) ListMaintenance(ctx context.Context, cred domainauth.Credential) ([]booking.MaintenanceBlock, error) {
	var out listOf[booking.MaintenanceBlock]
	if err := c.do(ctx, call{method: http.MethodGet, path: "admin/maintenance", cred: cred, out: &out, idempotent: true}); err != nil {
		return nil, err
	}
	return out.items, nil
}

// CreateMaintenance schedules a maintenance block.
func (c *Client) CreateMaintenance(
	ctx context.Context,
	cred domainauth.Credential,
	in booking.MaintenanceInput,
) (booking.MaintenanceBlock, error) {
	var out itemOf[booking.MaintenanceBlock]
	err := c.do(ctx, call{method: http.MethodPost, path: "admin/maintenance", cred: cred, body: in, out: &out})
	return out.item, err
}

// DeleteMaintenance removes a maintenance block.
func (c *Client) DeleteMaintenance(ctx context.Context, cred domainauth.Credential, id string) error {
	return c.do(ctx, call{
		method:     http.MethodDelete,
		path:       "admin/maintenance/" + url.PathEscape(id),
		cred:       cred,
		idempotent: true,
	})
}

// listOf accepts either a bare JSON array or an object wrapping it under "data".
type listOf[T any] struct {
	items []T
}

func (l *listOf[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var env struct {
			Data []T `json:"data"`
		}
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		l.items = env.Data
		return nil
	}
	return json.Unmarshal(b, &l.items)
}

// itemOf accepts either a bare JSON object or one wrapped under "data".
type itemOf[T any] struct {
	item T
}

func (i *itemOf[T]) UnmarshalJSON(b []byte) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err == nil && len(env.Data) > 0 && env.Data[0] == '{' {
		return json.Unmarshal(env.Data, &i.item)
	}
	return json.Unmarshal(b, &i.item)
}
