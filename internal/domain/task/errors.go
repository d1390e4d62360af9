package task

import "errors"

var (
	// ErrTaskNotFound indicates the task doesn't exist in the caller's workspace.
	ErrTaskNotFound = errors.New("task not found")
	// ErrInvalidInput indicates invalid input for task operations.
	ErrInvalidInput = errors.New("invalid task input")
)
