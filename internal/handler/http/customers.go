package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/models"
)

// registerCustomer creates a customer and answers with a fresh access token,
// both as the plain-text body and in the Authorization header.
func (h *Handler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.CustomerService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, view.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	if _, err = utils.WriteText(w, token.SignedString, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing token")
	}
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	views, err := h.services.CustomerService.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, views, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.services.CustomerService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, view, http.StatusOK)
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.UpdateRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CustomerService.Update(r.Context(), id, req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerIDFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CustomerService.DeleteByID(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func customerIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCustomerID
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
