package cli

import "errors"

// Error variables for command dispatch.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUnexpectedArgs  = errors.New("unexpected arguments")
	ErrWorkDirNotFound = errors.New("cannot get working directory")
)
