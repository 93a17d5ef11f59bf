// Package common defines shared sentinel errors and small helpers used across
// the hotelres layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal          = errors.New("internal error")
	ErrorPersistenceFailed = errors.New("persistence failed")

	// Validation errors. They are returned before any hashing or store access.
	ErrorValidation       = errors.New("validation error")
	ErrorPasswordMismatch = fmt.Errorf("%w: password and confirmation do not match", ErrorValidation)

	// Auth errors. Unknown email and wrong password share this value.
	ErrorInvalidCredentials = errors.New("invalid credentials")
)
