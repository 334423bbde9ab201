package database

import "errors"

var (
	// ErrDuplicateUser is returned when registering a username that is
	// already present in the user table.
	ErrDuplicateUser = errors.New("username already exists")

	// ErrUserNotFound is returned when a looked-up username has no record.
	ErrUserNotFound = errors.New("user not found")
)
