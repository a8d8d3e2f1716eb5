package client

import "errors"

var (
	ErrNoSession      = errors.New("not logged in, run `login <username>` first")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArgs    = errors.New("missing command arguments")
)
