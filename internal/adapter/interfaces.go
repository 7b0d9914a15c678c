// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the outbound HTTP client of the customer service REST API.
//
// [CustomerAdapter] hides the transport from callers. Non-2xx responses are
// decoded from the service's APIError body and mapped to the sentinel errors
// in errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-customer-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/customer_adapter_mock.go -package=mock

// CustomerAdapter talks to a running customer service.
type CustomerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, empty when none is set.
	Token() string

	// Register creates a customer, stores the returned access token and
	// returns it.
	Register(ctx context.Context, req models.RegistrationRequest) (string, error)

	// Login authenticates and stores the returned access token. The refresh
	// token from the X-Refresh-Token header is returned alongside the body.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, string, error)

	ListCustomers(ctx context.Context) ([]models.CustomerView, error)
	GetCustomer(ctx context.Context, id int64) (models.CustomerView, error)
	UpdateCustomer(ctx context.Context, id int64, req models.UpdateRequest) error
	DeleteCustomer(ctx context.Context, id int64) error

	// Version returns the server build info.
	Version(ctx context.Context) (models.AppBuildInfo, error)

	// Health returns nil when the server reports UP.
	Health(ctx context.Context) error
}
