package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrBadDuration  = errors.New("snooze duration not understood")
)
