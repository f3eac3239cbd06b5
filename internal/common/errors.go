// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Analytics errors.
	ErrNoTransactions = errors.New("no transactions provided")
	ErrInvalidGoal    = errors.New("goal amount and months must be positive")

	// Session errors.
	ErrInvalidNote = errors.New("note must be a non-empty string")
	ErrNoSession   = errors.New("no transactions in session; load a file or raw CSV first")

	// Loader errors.
	ErrNotFound        = errors.New("not found")
	ErrInvalidEncoding = errors.New("source is not valid UTF-8 text")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
