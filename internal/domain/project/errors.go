package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist in the caller's workspace.
	ErrProjectNotFound = errors.New("project not found")
	// ErrClientNotFound indicates the referenced client doesn't exist in the caller's workspace.
	ErrClientNotFound = errors.New("project client not found")
	// ErrInvalidInput indicates invalid input for project operations.
	ErrInvalidInput = errors.New("invalid project input")
)
