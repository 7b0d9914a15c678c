package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-service/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}

// getHealth answers 200 {"status":"UP"} or a 503 APIError when storage is down.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckHealth(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Health{Status: "UP"}, http.StatusOK)
}
