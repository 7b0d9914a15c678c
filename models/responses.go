package models

import "time"

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token    string       `json:"token"`
	Customer CustomerView `json:"customer"`
}

// APIError is the body of every non-2xx API response.
type APIError struct {
	Path      string    `json:"path"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Error implements error so a decoded APIError can be returned to callers
// of the HTTP client as is.
func (e APIError) Error() string {
	return e.Message
}

// Health is the body of GET /api/v1/health.
type Health struct {
	Status string `json:"status"`
}
