package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingID      = errors.New("a positive -id is required")
	ErrNothingToDo    = errors.New("no fields to update")
)
