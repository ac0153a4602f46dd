// Package common defines sentinel errors shared by the store, the directory
// service, the session layer and the CLI. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Store/service errors.
	ErrorNotFound = errors.New("not found")

	// Session errors (caller-side gating).
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrForbidden          = errors.New("forbidden")
	ErrAccessExpired      = errors.New("access expired")

	// Input errors.
	ErrInvalidWeekDay = errors.New("invalid weekday")
	ErrInvalidDataURL = errors.New("invalid data url")
	ErrInvalidRole    = errors.New("invalid role")
)
