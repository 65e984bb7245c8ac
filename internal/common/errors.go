// Package common defines shared constants and sentinel errors used across
// the tutorbook components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrInvalidEmail = errors.New("invalid email")
	ErrWeakPassword = errors.New("password must contain an uppercase letter and a digit")

	// Credential store errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Menu input errors.
	ErrInvalidMenuSelection = errors.New("invalid menu selection")

	// File I/O errors.
	ErrPersistence = errors.New("persistence error")
)
