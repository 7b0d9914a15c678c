// Package server runs the customer API over HTTP and, when configured, the
// gRPC health endpoint.
//
// Both listeners are bound before anything is served so a busy port fails
// startup. SIGINT, SIGTERM or a cancelled context stop every transport.
package server
