// Package http implements the REST transport of the customer service.
//
// It wires the /api/v1 routes, the request handlers and the middleware
// chain: trace ids, access logging, request metrics, panic recovery,
// timeouts, compression, login rate limiting and bearer-token
// authentication. Every failure is written as a models.APIError body.
package http
