// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
)

var ErrUserQuit = errors.New("user quit")

// humanizeError turns adapter and network failures into a short line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return "session expired or credentials rejected, log in again"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}
