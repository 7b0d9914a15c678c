package service

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the transport layer maps
// each kind to a status code.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidKeyMaterial    = errors.New("invalid RSA key material")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)

// Error is a domain failure carrying a client-facing message.
//
//	errors.Is(err, service.ErrNotFound) // true for newError(ErrNotFound, ...)
type Error struct {
	Kind    error
	Message string
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Message returns the client-facing text of err: the Message of a wrapped
// *Error, or fallback for any other failure.
func Message(err error, fallback string) string {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	return fallback
}
