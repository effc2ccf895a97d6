package models

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller is not the author of the
	// post it is trying to change.
	ErrForbidden = errors.New("forbidden")

	// ErrEmailTaken is returned on registration with an already used email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on a failed login or an invalid
	// or expired refresh token.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
