package httpx

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// AdminHandlers serves the admin screens. Every route is mounted behind RequireCredential,
// so the guarded slot is always in the request context.
type AdminHandlers struct {
	Svc      *service.AdminService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *AdminHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// bookingsPage is the content of the bookings screen.
type bookingsPage struct {
	service.BookingsView
	Statuses []booking.Status
}

// Dashboard renders the aggregate counts.
// GET /admin.
func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	data := NewPageData(r, PageMeta{Title: "Dashboard", CurrentPage: PageDashboard})
	stats, err := h.Svc.Dashboard(r.Context(), slot)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Content = stats
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// Categories lists the categories with inline edit forms.
// GET /admin/categories.
func (h *AdminHandlers) Categories(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	data := categoriesPageData(r)
	cats, err := h.Svc.Categories(r.Context(), slot)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Content = cats
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// CategoryCreate creates a category.
// POST /admin/categories.
func (h *AdminHandlers) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, "")
}

// CategoryUpdate updates a category.
// POST /admin/categories/{id}.
func (h *AdminHandlers) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveCategory(w, r, r.PathValue("id"))
}

func (h *AdminHandlers) saveCategory(w http.ResponseWriter, r *http.Request, id string) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, categoriesPageData(r), apperrors.Validation("Invalid form submission."))
		return
	}
	in := booking.CategoryInput{
		Name:        r.PostFormValue("name"),
		Slug:        r.PostFormValue("slug"),
		Description: r.PostFormValue("description"),
		Icon:        r.PostFormValue("icon"),
	}

	if _, err := h.Svc.SaveCategory(r.Context(), slot, id, in); err != nil {
		data := categoriesPageData(r)
		if id == "" {
			data.Form = map[string]string{
				"name":        in.Name,
				"slug":        in.Slug,
				"description": in.Description,
				"icon":        in.Icon,
			}
		}
		h.failWithCategories(w, r, slot, data, err)
		return
	}
	redirectTo(w, r, "/admin/categories")
}

// CategoryDelete deletes a category.
// POST /admin/categories/{id}/delete.
func (h *AdminHandlers) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(r.Context(), slot, r.PathValue("id")); err != nil {
		h.failWithCategories(w, r, slot, categoriesPageData(r), err)
		return
	}
	redirectTo(w, r, "/admin/categories")
}

// Bookings lists bookings, optionally filtered by status.
// GET /admin/bookings?status=pending.
func (h *AdminHandlers) Bookings(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	data := NewPageData(r, PageMeta{Title: "Bookings", CurrentPage: PageBookings})
	filter, err := booking.ParseStatus(r.URL.Query().Get("status"))
	if err != nil {
		h.fail(w, r, data, apperrors.Validation("Unknown booking status filter."))
		return
	}

	view, err := h.Svc.Bookings(r.Context(), slot, filter)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Content = bookingsPage{BookingsView: view, Statuses: booking.Statuses()}
	if IsHTMX(r) {
		HTMX(w).PushURL(r.URL.RequestURI())
	}
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// BookingStatus applies a status transition to a booking.
// POST /admin/bookings/{id}/status.
func (h *AdminHandlers) BookingStatus(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	data := NewPageData(r, PageMeta{Title: "Bookings", CurrentPage: PageBookings})
	next, err := booking.ParseStatus(r.PostFormValue("status"))
	if err != nil || next == "" {
		h.fail(w, r, data, apperrors.Validation("Choose a valid booking status."))
		return
	}

	if err := h.Svc.UpdateBookingStatus(r.Context(), slot, r.PathValue("id"), next); err != nil {
		h.fail(w, r, data, err)
		return
	}
	redirectTo(w, r, bookingsURL(r.URL.Query().Get("status")))
}

// bookingsURL returns the bookings screen keeping filter when it names a known status.
func bookingsURL(filter string) string {
	status, err := booking.ParseStatus(filter)
	if err != nil || status == "" {
		return "/admin/bookings"
	}
	return "/admin/bookings?" + url.Values{"status": {string(status)}}.Encode()
}

func (h *AdminHandlers) slot(w http.ResponseWriter, r *http.Request) (ports.CredentialSlot, bool) {
	slot, ok := GetSlotFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return nil, false
	}
	return slot, true
}

func categoriesPageData(r *http.Request) PageData {
	return NewPageData(r, PageMeta{Title: "Categories", CurrentPage: PageCategories})
}

// failWithCategories re-renders the categories screen with err attached, reloading the list
// so the page stays usable.
func (h *AdminHandlers) failWithCategories(
	w http.ResponseWriter,
	r *http.Request,
	slot ports.CredentialSlot,
	data PageData,
	err error,
) {
	if !apperrors.IsUnauthorized(err) {
		cats, lerr := h.Svc.Categories(r.Context(), slot)
		switch {
		case lerr == nil:
			data.Content = cats
		case apperrors.IsUnauthorized(lerr):
			err = lerr
		}
	}
	h.fail(w, r, data, err)
}

// fail renders data with err attached. A lost credential sends the client to the login view.
func (h *AdminHandlers) fail(w http.ResponseWriter, r *http.Request, data PageData, err error) {
	if apperrors.IsUnauthorized(err) {
		redirectToLogin(w, r)
		return
	}
	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "admin request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	data.Error = userMessage(err)
	data.Errors = apperrors.GetFields(err)
	h.Renderer.Render(w, r, status, data)
}
