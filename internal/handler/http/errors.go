// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-customer-service/internal/app"
)

// Sentinel errors of the transport layer. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// scheme but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New(app.MsgInvalidJSON)

	// ErrInvalidCustomerID is returned when {id} is not a positive integer.
	ErrInvalidCustomerID = errors.New(app.MsgInvalidCustomerID)

	// ErrTooManyRequests is returned by the login rate limiter.
	ErrTooManyRequests = errors.New(app.MsgTooManyRequests)

	// ErrRouteNotFound and ErrMethodNotAllowed back the router fallbacks.
	ErrRouteNotFound    = errors.New(app.MsgNotFound)
	ErrMethodNotAllowed = errors.New(app.MsgMethodNotAllowed)
)
