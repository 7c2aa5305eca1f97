package note

import "errors"

var (
	// ErrNotFound covers both a missing note and a note owned by someone
	// else, so callers cannot probe which note ids exist
	ErrNotFound = errors.New("notes not found")

	// ErrUnknownUser means a share request named a user id that does not exist
	ErrUnknownUser = errors.New("unknown user in share list")
)
