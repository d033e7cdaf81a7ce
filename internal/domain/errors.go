package domain

import "errors"

// Error taxonomy for a tag/release run. Every failure returned by the
// orchestrator wraps exactly one of these.
var (
	// ErrInvalidInput reports malformed or missing configuration.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRemote reports an unexpected status or transport failure from the hosting API.
	ErrRemote = errors.New("remote error")
	// ErrConflict reports an existing tag while ignore-existing is disabled.
	ErrConflict = errors.New("conflict")
	// ErrInvalidState reports an existing tag reference that does not point to a commit.
	ErrInvalidState = errors.New("invalid state")
)
