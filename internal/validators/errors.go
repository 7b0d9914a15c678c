package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidData wraps every rule violation; the message lists the offending fields.
	ErrInvalidData = errors.New("invalid data provided")
)
