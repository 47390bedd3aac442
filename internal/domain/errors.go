package domain

import "errors"

var (
	// ErrNotFound indicates a plan or entry ID is absent from the catalog.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState indicates an operation's preconditions were not met,
	// e.g. replacing the top of an empty navigation stack.
	ErrInvalidState = errors.New("invalid state")

	// ErrInvariantViolation indicates a programming error, such as resolving
	// a screen kind that has no destination.
	ErrInvariantViolation = errors.New("invariant violation")
)
