package http

import (
	"net/http"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

// refreshTokenHeader carries the refresh token issued on login.
const refreshTokenHeader = "X-Refresh-Token"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	refresh, err := h.services.AuthService.IssueRefreshToken(ctx, resp.Customer.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", resp.Customer.ID).Msg("customer logged in")

	w.Header().Set("Authorization", "Bearer "+resp.Token)
	w.Header().Set(refreshTokenHeader, refresh.SignedString)
	writeJSON(w, r, resp, http.StatusOK)
}
