// Package utils holds small helpers shared by the transport and service
// layers: context keys, JWT and RSA key handling, JSON responses,
// trace id generation and the outbound HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so values stored here never
// collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey stores the authenticated customer email.
//
//	ctx := context.WithValue(ctx, utils.SubjectCtxKey, "vova@gmail.com")
var SubjectCtxKey = contextKey("subject")

// GetSubjectFromContext returns the authenticated customer email.
// ok is false when the value is missing, empty or of another type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
