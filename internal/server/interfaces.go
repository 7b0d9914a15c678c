package server

import "context"

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer starts every enabled transport and blocks until ctx is
	// cancelled, a termination signal arrives or a transport fails. All
	// transports are shut down gracefully before it returns.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops all transports. In-flight requests are given
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
