// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Validation errors.
	ErrValidation      = errors.New("validation failed")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrSameAccount     = errors.New("cannot transfer to the same account")
	ErrUnknownAccount  = errors.New("unknown account")
	ErrUnknownCategory = errors.New("unknown category")

	// Referential-integrity errors.
	ErrCategoryInUse = errors.New("category is still referenced")
	ErrBudgetExists  = errors.New("budget already exists for this category and period")

	// Import/export errors.
	ErrMalformedImport = errors.New("malformed import file")
	ErrUnknownDataKey  = errors.New("unknown data key")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
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

// ReferenceError reports how many records block a destructive operation.
type ReferenceError struct {
	Err          error
	Subject      string
	Transactions int
	Budgets      int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s is referenced by %d transaction(s) and %d budget(s)",
		e.Subject, e.Transactions, e.Budgets)
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}
