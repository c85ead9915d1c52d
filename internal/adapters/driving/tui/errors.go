package tui

import "errors"

// ErrMissingCleanService is returned when the clean service is not provided.
var ErrMissingCleanService = errors.New("tui: clean service is required")

// ErrMissingPreview is returned when no preview is supplied to the review screen.
var ErrMissingPreview = errors.New("tui: preview is required")
