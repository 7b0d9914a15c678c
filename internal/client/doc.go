// Package client implements the command-line client of the customer service.
//
// Each subcommand (register, login, list, get, update, delete, version,
// health, browse) parses its own flags and calls the service through
// [adapter.CustomerAdapter]. Results are printed as JSON.
package client
