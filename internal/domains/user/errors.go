package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so login failures don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
