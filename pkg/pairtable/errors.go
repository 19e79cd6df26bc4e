package pairtable

import "errors"

// Error variables for rendering.
var (
	ErrUnknownFormat   = errors.New("unknown format")
	ErrGoSourceInvalid = errors.New("generated go source does not format")
	ErrInvalidName     = errors.New("invalid identifier")
)
