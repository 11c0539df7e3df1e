package httpx

import (
	"html/template"
	"net/http"
)

// PageMeta describes the page being rendered.
type PageMeta struct {
	Title       string
	CurrentPage string
}

// PageData is the root value handed to every page template.
type PageData struct {
	PageMeta
	// CSRFField is the hidden input carrying the CSRF token for forms on the page.
	CSRFField template.HTML
	// Authenticated is true on pages rendered behind the session guard.
	Authenticated bool
	// Flash is a one-off success notice.
	Flash string
	// Error is a page-level error message.
	Error string
	// Errors holds field-level validation errors (field name → message).
	Errors map[string]string
	// Form echoes submitted form values back into the inputs.
	Form map[string]string
	// Content is the page-specific payload.
	Content any
}

// NewPageData creates the base data for a page rendered in response to r.
func NewPageData(r *http.Request, meta PageMeta) PageData {
	_, guarded := GetSlotFromContext(r.Context())
	return PageData{
		PageMeta:      meta,
		CSRFField:     csrfField(r),
		Authenticated: guarded,
	}
}
