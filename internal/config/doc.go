// Package config loads, merges and validates the configuration of the
// customer service and its command-line client.
//
// Sources, highest precedence first:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags (server only)
//  3. JSON config file named by CONFIG, -c or -config
//  4. Built-in defaults
//
// Entry points are [GetStructuredConfig] and [GetClientConfig].
package config
