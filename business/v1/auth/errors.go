package auth

import "errors"

var (
	// ErrUsernameTaken means signup requested a username that already exists
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so login failures do not reveal which usernames exist
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidRefresh means the refresh token is unknown, already used or expired
	ErrInvalidRefresh = errors.New("refresh token is invalid or expired")
)
