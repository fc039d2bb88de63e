package domain

import "errors"

// Domain errors represent validation and classification failures.
// Infrastructure errors are wrapped separately with fmt.Errorf.
var (
	// ErrInvalidInput indicates entry text that is empty after trimming.
	ErrInvalidInput = errors.New("entry text cannot be empty")

	// ErrInvalidDate indicates a date string not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidSentiment indicates a sentiment label outside the fixed
	// positive/neutral/negative set.
	ErrInvalidSentiment = errors.New("invalid sentiment label")

	// ErrEmptyInput indicates classification was requested for empty
	// or whitespace-only text.
	ErrEmptyInput = errors.New("text cannot be empty")

	// ErrAnalysisFailed indicates an unexpected failure during
	// classification, surfaced to callers as an internal error.
	ErrAnalysisFailed = errors.New("analysis failed")
)
