package session

import (
	"errors"
	"fmt"
)

// Account is a stored credential pair enabling future authentication.
// Passwords are stored in plaintext; this is a local demo credential
// store, not a hardened auth system.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session identifies the currently authenticated user. At most one
// session is active per running client.
type Session struct {
	Email string `json:"email"`
}

// Signup validation failures, checked in a fixed order where the first
// failure wins.
var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("email already exists")
)

// ErrInvalidCredentials is the single generic authentication failure.
// Unknown email and wrong password are intentionally indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// MinPasswordLength is the minimum accepted password length at signup
const MinPasswordLength = 6

// StorageError signals a persistence I/O failure. Validation and
// authentication failures never take this form.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("session storage %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying I/O error
func (e *StorageError) Unwrap() error {
	return e.Err
}
