package services

import "errors"

// Failure taxonomy shared by all services. Controllers map these to HTTP
// statuses in one place; NotFound deliberately covers both "absent" and
// "not visible to the caller" so existence is never leaked.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("duplicate resource")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
)
