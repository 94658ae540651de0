package pipeline

import "errors"

// Sentinel errors returned by the pipeline.
var (
	// ErrNoCategories is returned when the run configuration names no categories.
	ErrNoCategories = errors.New("no categories configured")

	// ErrInvalidHeader is returned when a review file is missing required columns.
	ErrInvalidHeader = errors.New("review file header is missing required columns")
)
