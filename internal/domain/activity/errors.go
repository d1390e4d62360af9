package activity

import "errors"

var (
	// ErrEntryNotFound indicates the activity entry doesn't exist in the caller's workspace.
	ErrEntryNotFound = errors.New("activity entry not found")
	// ErrInvalidInput indicates invalid input for activity operations.
	ErrInvalidInput = errors.New("invalid activity input")
)
