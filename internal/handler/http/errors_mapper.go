package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-customer-service/internal/app"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/service"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/models"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:                http.StatusNotFound,
	service.ErrDuplicateEmail:          http.StatusConflict,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorageUnavailable:      http.StatusServiceUnavailable,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidCustomerID:          http.StatusBadRequest,
	ErrTooManyRequests:            http.StatusTooManyRequests,
	ErrRouteNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:           http.StatusMethodNotAllowed,
}

func statusFromError(err error) int {
	_, status := classify(err)
	return status
}

// classify returns the matched sentinel and its status, or (nil, 500).
func classify(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

// messageFromError picks the client-facing text for err. Unexpected
// failures get a generic message.
func messageFromError(err error) string {
	target, status := classify(err)
	switch status {
	case http.StatusInternalServerError:
		return app.MsgInternalServerError
	case http.StatusServiceUnavailable:
		return app.MsgServiceUnavailable
	case http.StatusUnauthorized:
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			return app.MsgTokenIsExpired
		case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
			return app.MsgTokenIsExpiredOrInvalid
		case errors.Is(err, service.ErrInvalidCredentials):
			return service.Message(err, target.Error())
		default:
			return app.MsgUnauthorized
		}
	default:
		return service.Message(err, target.Error())
	}
}

// writeError writes err as an APIError with the status mapped from its kind.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.APIError{
		Path:      r.URL.Path,
		Message:   messageFromError(err),
		Status:    status,
		Timestamp: time.Now().UTC(),
	}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
