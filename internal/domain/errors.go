package domain

import "errors"

// Error kinds raised by field constructors and record operations. Callers
// classify them with errors.Is; the command layer renders them to one-line
// messages at a single adapter boundary.
var (
	// ErrInvalidFormat indicates a phone, birthday or name value that does
	// not satisfy its format invariant.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNotFound indicates a lookup miss (contact name or old phone).
	ErrNotFound = errors.New("not found")

	// ErrBirthdayAlreadySet indicates an attempt to overwrite a set birthday.
	ErrBirthdayAlreadySet = errors.New("birthday already set")
)
