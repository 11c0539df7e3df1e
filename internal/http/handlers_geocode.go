package httpx

import (
	"log/slog"
	"net/http"

	"github.com/sportbooking/sportbook-web/internal/service"
)

// GeocodeHandlers serves the address search used by the court location picker.
type GeocodeHandlers struct {
	Svc    *service.GeocodeService
	Logger *slog.Logger
}

// Search returns up to a handful of places matching q inside the service region.
// GET /api/geocode?q=.
func (h *GeocodeHandlers) Search(w http.ResponseWriter, r *http.Request) {
	places, err := h.Svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		logger := h.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(r.Context(), "address search failed", slog.Any("error", err))
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, places)
}
