// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-customer-service/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0] and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// UI is the interactive front end used by the login and browse commands.
type UI interface {
	LoginFlow(ctx context.Context) (models.AuthResponse, error)
	Browse(ctx context.Context) error
}
