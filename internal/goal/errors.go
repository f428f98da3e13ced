package goal

import "errors"

// Domain-specific errors for the goal package.
var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrEmptyTitle   = errors.New("goal title is empty")
	ErrBadYear      = errors.New("goal year is invalid")
	ErrBadProgress  = errors.New("goal progress must be between 0 and 100")
)
