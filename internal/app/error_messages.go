// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// customer service handlers and middleware.
//
// Msg* constants are written into APIError bodies or log entries. Domain
// failures carry their own messages (see service.Error); these cover the
// transport layer.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidCustomerID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidCustomerID = "invalid customer id"

	// MsgInternalServerError hides unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorized is returned when a protected route is called without
	// usable credentials.
	MsgUnauthorized = "full authentication is required to access this resource"

	// MsgTokenIsExpired is returned when a bearer token is well-formed and
	// correctly signed but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "resource not found"

	// MsgMethodNotAllowed is returned when the route exists but not for the
	// requested method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgTooManyRequests is returned by the login rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgServiceUnavailable is returned by the health endpoint when storage
	// cannot be reached.
	MsgServiceUnavailable = "service unavailable"
)
