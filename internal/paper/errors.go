package paper

import "errors"

// Domain-specific errors for the paper package.
var (
	ErrPaperNotFound = errors.New("paper not found")
	ErrNoKeywords    = errors.New("no scan keywords configured")
)
