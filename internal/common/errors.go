// Package common contains shared constants and sentinel errors used across
// tracker components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// MinPasswordLength is the minimum accepted password length at registration.
const MinPasswordLength = 6

var (
	// Directory errors.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials covers both "unknown email" and "wrong password";
	// login deliberately does not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Repository errors.
	ErrNotFound = errors.New("not found")

	// Storage errors: the backing or ephemeral store failed to read, write,
	// or decode a value.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrValidation is the errors.Is target for all validation failures,
	// including ValidationError.
	ErrValidation = errors.New("validation error")

	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
)

// ValidationError reports the required fields missing from a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
