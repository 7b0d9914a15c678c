// Package tui is the interactive terminal front end of cmd/client.
//
// It runs Bubble Tea programs on top of [adapter.CustomerAdapter]: a login
// form and a customer browser with detail view, deletion and copying of a
// customer's email to the clipboard.
package tui
