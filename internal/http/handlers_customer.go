package httpx

import (
	"log/slog"
	"net/http"

	"github.com/sportbooking/sportbook-web/internal/domain/booking"
	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// MyBookingsPath lists the signed-in customer's bookings.
const MyBookingsPath = "/my-bookings"

// CustomerHandlers serves the end-user screens. Browsing is public; booking and the
// bookings list are mounted behind RequireCredential.
type CustomerHandlers struct {
	Svc      *service.CustomerService
	Renderer *TemplateRenderer
	Logger   *slog.Logger
}

func (h *CustomerHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// courtPage is the content of the court detail screen.
type courtPage struct {
	Court booking.Court
}

// Home lists the sport categories.
// GET /.
func (h *CustomerHandlers) Home(w http.ResponseWriter, r *http.Request) {
	data := NewPageData(r, PageMeta{Title: "Book a court", CurrentPage: PageHome})
	cats, err := h.Svc.Categories(r.Context())
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Content = cats
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// Category lists the active courts of one category.
// GET /category/{slug}.
func (h *CustomerHandlers) Category(w http.ResponseWriter, r *http.Request) {
	data := NewPageData(r, PageMeta{Title: "Courts", CurrentPage: PageCategory})
	view, err := h.Svc.CategoryCourts(r.Context(), r.PathValue("slug"))
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Title = view.Category.Name
	data.Content = view
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// Court shows a court with the booking form.
// GET /court/{id}.
func (h *CustomerHandlers) Court(w http.ResponseWriter, r *http.Request) {
	data := courtPageData(r)
	court, err := h.Svc.Court(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Title = court.Name
	data.Content = courtPage{Court: court}
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// RequestBooking submits a booking request for the court.
// POST /court/{id}/bookings.
func (h *CustomerHandlers) RequestBooking(w http.ResponseWriter, r *http.Request) {
	slot, ok := GetSlotFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	courtID := r.PathValue("id")
	if err := r.ParseForm(); err != nil {
		h.failBooking(w, r, courtID, apperrors.Validation("Invalid form submission."))
		return
	}
	form := service.BookingForm{
		BookingDate:   r.PostFormValue("booking_date"),
		StartTime:     r.PostFormValue("start_time"),
		EndTime:       r.PostFormValue("end_time"),
		CustomerName:  r.PostFormValue("customer_name"),
		CustomerPhone: r.PostFormValue("customer_phone"),
		Notes:         r.PostFormValue("notes"),
	}
	if _, err := h.Svc.RequestBooking(r.Context(), slot, courtID, form); err != nil {
		h.failBooking(w, r, courtID, err)
		return
	}
	redirectTo(w, r, MyBookingsPath+"?requested=1")
}

// failBooking re-renders the court screen with the submitted values and err attached.
func (h *CustomerHandlers) failBooking(w http.ResponseWriter, r *http.Request, courtID string, err error) {
	data := courtPageData(r)
	data.Form = map[string]string{
		"booking_date":   r.PostFormValue("booking_date"),
		"start_time":     r.PostFormValue("start_time"),
		"end_time":       r.PostFormValue("end_time"),
		"customer_name":  r.PostFormValue("customer_name"),
		"customer_phone": r.PostFormValue("customer_phone"),
		"notes":          r.PostFormValue("notes"),
	}
	if !apperrors.IsUnauthorized(err) {
		if court, cerr := h.Svc.Court(r.Context(), courtID); cerr == nil {
			data.Title = court.Name
			data.Content = courtPage{Court: court}
		}
	}
	h.fail(w, r, data, err)
}

// MyBookings lists the caller's bookings.
// GET /my-bookings.
func (h *CustomerHandlers) MyBookings(w http.ResponseWriter, r *http.Request) {
	slot, ok := GetSlotFromContext(r.Context())
	if !ok {
		redirectToLogin(w, r)
		return
	}
	data := NewPageData(r, PageMeta{Title: "My bookings", CurrentPage: PageMyBookings})
	if r.URL.Query().Get("requested") == "1" {
		data.Flash = "Booking requested. We will contact you to confirm it."
	}
	list, err := h.Svc.MyBookings(r.Context(), slot)
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	data.Content = list
	h.Renderer.Render(w, r, http.StatusOK, data)
}

func courtPageData(r *http.Request) PageData {
	return NewPageData(r, PageMeta{Title: "Court", CurrentPage: PageCourt})
}

// fail renders data with err attached. A lost credential sends the client to the login view.
func (h *CustomerHandlers) fail(w http.ResponseWriter, r *http.Request, data PageData, err error) {
	if apperrors.IsUnauthorized(err) {
		redirectToLogin(w, r)
		return
	}
	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger().ErrorContext(r.Context(), "customer request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	data.Error = userMessage(err)
	data.Errors = apperrors.GetFields(err)
	h.Renderer.Render(w, r, status, data)
}
