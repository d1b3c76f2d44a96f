package domain

import "errors"

// Configuration errors abort a run before any network call. Everything
// else the engine encounters is converted to a warning or a report note.
var (
	ErrUnsupportedRegion = errors.New("unsupported location")
	ErrMissingProject    = errors.New("project is required")
	ErrEmptySQL          = errors.New("no SQL input provided")
)
