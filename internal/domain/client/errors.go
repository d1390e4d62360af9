package client

import "errors"

var (
	// ErrClientNotFound indicates the client doesn't exist in the caller's workspace.
	ErrClientNotFound = errors.New("client not found")
	// ErrInvalidStage indicates a stage value outside the pipeline enum.
	ErrInvalidStage = errors.New("invalid pipeline stage")
	// ErrInvalidInput indicates invalid input for client operations.
	ErrInvalidInput = errors.New("invalid client input")
)
