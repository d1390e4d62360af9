package workspace

import "errors"

var (
	// ErrWorkspaceNotFound indicates the workspace doesn't exist.
	ErrWorkspaceNotFound = errors.New("workspace not found")
	// ErrMemberExists indicates the user is already a member.
	ErrMemberExists = errors.New("user is already a workspace member")
	// ErrInvalidInput indicates invalid input for workspace operations.
	ErrInvalidInput = errors.New("invalid workspace input")
)
