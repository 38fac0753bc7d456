package service

import "errors"

// Sentinel errors of the service layer. Handlers translate these into HTTP
// statuses; everything else is an infrastructure failure and surfaces as a
// generic 500 with the detail logged server-side only.
var (
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials covers both "no such user" and "wrong password".
	// The two cases are never distinguished in the outward message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrConflict = errors.New("already exists")
	ErrNotFound = errors.New("not found")
)
