package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/utils"
)

// auth enforces bearer-token authentication.
//
// The token from the "Authorization" header is verified by
// [service.AuthService.ValidateToken]. On success the customer email is
// stored under [utils.SubjectCtxKey] and added to the request logger as
// "subject". Every failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ValidateToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).With().Str("subject", token.Subject).Logger()
		ctx = l.WithContext(ctx)
		ctx = context.WithValue(ctx, utils.SubjectCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token of an "Authorization: Bearer <token>" header.
//
// It returns [ErrInvalidAuthorizationHeader] for any other scheme or shape
// and [ErrEmptyToken] when the token part is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}
	if strings.ContainsRune(tokenString, ' ') {
		return "", ErrInvalidAuthorizationHeader
	}

	return tokenString, nil
}
