package store

import "errors"

var (
	// ErrNotFound is returned when a document doesn't exist or belongs
	// to another workspace. The two cases are deliberately
	// indistinguishable so that guessing ids leaks nothing.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned for mutations without a resolved workspace
	ErrUnauthorized = errors.New("unauthorized: no active workspace")

	// ErrUnknownKind is returned for a kind missing from the catalog
	ErrUnknownKind = errors.New("unknown entity kind")

	// ErrInvalidInput is returned when field validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidFilter is returned when a filter references an unknown field
	ErrInvalidFilter = errors.New("invalid filter field")
)
