package httpx

import (
	"net/http"
	"strings"
)

// IsHTMX reports whether the request was initiated by htmx (Hx-Request: true).
func IsHTMX(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Hx-Request"), "true")
}

// WantsPartial returns true when the handler should return only the main fragment (not full layout).
// Rule: partial for all HTMX requests, including history restores.
func WantsPartial(r *http.Request) bool {
	return IsHTMX(r)
}

// HTMXResponse provides a fluent API for building HTMX responses.
type HTMXResponse struct {
	w http.ResponseWriter
}

// HTMX creates a new HTMXResponse for fluent response building.
func HTMX(w http.ResponseWriter) *HTMXResponse {
	return &HTMXResponse{w: w}
}

// Redirect makes htmx replace the whole page with url. The status is 200 because htmx
// follows Hx-Redirect only on responses it processes; a 3xx would be followed by the
// XHR itself and swapped into the page. The handler must not write after calling it.
func (h *HTMXResponse) Redirect(url string) {
	h.w.Header().Set("Hx-Redirect", url)
	h.w.WriteHeader(http.StatusOK)
}

// PushURL records url in the browser history for the swapped content.
// This method is chainable.
func (h *HTMXResponse) PushURL(url string) *HTMXResponse {
	h.w.Header().Set("Hx-Push-Url", url)
	return h
}
