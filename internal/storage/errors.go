package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that no account exists for the username
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates that an account with this username already exists
	ErrAccountExists = errors.New("account already exists")
)
