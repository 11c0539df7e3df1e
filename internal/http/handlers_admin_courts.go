package httpx

import (
	"net/http"

	apperrors "github.com/sportbooking/sportbook-web/internal/errors"
	"github.com/sportbooking/sportbook-web/internal/ports"
	"github.com/sportbooking/sportbook-web/internal/service"
)

// Courts lists the courts with inline edit forms.
// GET /admin/courts.
func (h *AdminHandlers) Courts(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	h.renderCourts(w, r, slot, courtsPageData(r), nil)
}

// CourtCreate creates a court.
// POST /admin/courts.
func (h *AdminHandlers) CourtCreate(w http.ResponseWriter, r *http.Request) {
	h.saveCourt(w, r, "")
}

// CourtUpdate updates a court.
// POST /admin/courts/{id}.
func (h *AdminHandlers) CourtUpdate(w http.ResponseWriter, r *http.Request) {
	h.saveCourt(w, r, r.PathValue("id"))
}

func (h *AdminHandlers) saveCourt(w http.ResponseWriter, r *http.Request, id string) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderCourts(w, r, slot, courtsPageData(r), apperrors.Validation("Invalid form submission."))
		return
	}
	form := service.CourtForm{
		Name:         r.PostFormValue("name"),
		Description:  r.PostFormValue("description"),
		ImageURL:     r.PostFormValue("image_url"),
		PricePerHour: r.PostFormValue("price_per_hour"),
		Latitude:     r.PostFormValue("latitude"),
		Longitude:    r.PostFormValue("longitude"),
		CategoryID:   r.PostFormValue("category_id"),
		IsActive:     r.PostFormValue("is_active") != "",
	}

	if _, err := h.Svc.SaveCourt(r.Context(), slot, id, form); err != nil {
		data := courtsPageData(r)
		if id == "" {
			data.Form = map[string]string{
				"name":           form.Name,
				"description":    form.Description,
				"image_url":      form.ImageURL,
				"price_per_hour": form.PricePerHour,
				"latitude":       form.Latitude,
				"longitude":      form.Longitude,
				"category_id":    form.CategoryID,
			}
		}
		h.renderCourts(w, r, slot, data, err)
		return
	}
	redirectTo(w, r, "/admin/courts")
}

// CourtDelete deletes a court.
// POST /admin/courts/{id}/delete.
func (h *AdminHandlers) CourtDelete(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCourt(r.Context(), slot, r.PathValue("id")); err != nil {
		h.renderCourts(w, r, slot, courtsPageData(r), err)
		return
	}
	redirectTo(w, r, "/admin/courts")
}

func courtsPageData(r *http.Request) PageData {
	return NewPageData(r, PageMeta{Title: "Courts", CurrentPage: PageCourts})
}

// renderCourts loads the courts screen and renders it with cause attached, if any. When the
// reload itself fails the page carries that error instead.
func (h *AdminHandlers) renderCourts(
	w http.ResponseWriter,
	r *http.Request,
	slot ports.CredentialSlot,
	data PageData,
	cause error,
) {
	if apperrors.IsUnauthorized(cause) {
		redirectToLogin(w, r)
		return
	}
	view, err := h.Svc.Courts(r.Context(), slot)
	if err == nil {
		data.Content = view
	}
	if cause != nil && !apperrors.IsUnauthorized(err) {
		err = cause
	}
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	h.Renderer.Render(w, r, http.StatusOK, data)
}

// Maintenance lists maintenance blocks and the scheduling form.
// GET /admin/maintenance.
func (h *AdminHandlers) Maintenance(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	h.renderMaintenance(w, r, slot, maintenancePageData(r), nil)
}

// MaintenanceCreate schedules a maintenance block.
// POST /admin/maintenance.
func (h *AdminHandlers) MaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.renderMaintenance(w, r, slot, maintenancePageData(r), apperrors.Validation("Invalid form submission."))
		return
	}
	form := service.MaintenanceForm{
		CourtID:   r.PostFormValue("court_id"),
		BlockDate: r.PostFormValue("block_date"),
		StartTime: r.PostFormValue("start_time"),
		EndTime:   r.PostFormValue("end_time"),
		Reason:    r.PostFormValue("reason"),
	}
	if _, err := h.Svc.ScheduleMaintenance(r.Context(), slot, form); err != nil {
		data := maintenancePageData(r)
		data.Form = map[string]string{
			"court_id":   form.CourtID,
			"block_date": form.BlockDate,
			"start_time": form.StartTime,
			"end_time":   form.EndTime,
			"reason":     form.Reason,
		}
		h.renderMaintenance(w, r, slot, data, err)
		return
	}
	redirectTo(w, r, "/admin/maintenance")
}

// MaintenanceDelete removes a maintenance block.
// POST /admin/maintenance/{id}/delete.
func (h *AdminHandlers) MaintenanceDelete(w http.ResponseWriter, r *http.Request) {
	slot, ok := h.slot(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMaintenance(r.Context(), slot, r.PathValue("id")); err != nil {
		h.renderMaintenance(w, r, slot, maintenancePageData(r), err)
		return
	}
	redirectTo(w, r, "/admin/maintenance")
}

func maintenancePageData(r *http.Request) PageData {
	return NewPageData(r, PageMeta{Title: "Maintenance", CurrentPage: PageMaintenance})
}

func (h *AdminHandlers) renderMaintenance(
	w http.ResponseWriter,
	r *http.Request,
	slot ports.CredentialSlot,
	data PageData,
	cause error,
) {
	if apperrors.IsUnauthorized(cause) {
		redirectToLogin(w, r)
		return
	}
	view, err := h.Svc.Maintenance(r.Context(), slot)
	if err == nil {
		data.Content = view
	}
	if cause != nil && !apperrors.IsUnauthorized(err) {
		err = cause
	}
	if err != nil {
		h.fail(w, r, data, err)
		return
	}
	h.Renderer.Render(w, r, http.StatusOK, data)
}
