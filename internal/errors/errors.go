// Package errors provides shared error types for the CLABE server.
//
// Validation outcomes for CLABE numbers are not errors; they are reported as
// results. The types here cover caller misuse and failed lookups.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a code has no entry in a reference table.
type NotFoundError struct {
	Table      string // "bank", "city"
	Identifier string // the code that was looked up
}

func (e *NotFoundError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s not found in CLABE catalog: %s", e.Table, e.Identifier)
	}
	return fmt.Sprintf("not found in CLABE catalog: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError for a table lookup.
func NewNotFoundError(table, identifier string) *NotFoundError {
	return &NotFoundError{
		Table:      table,
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// ArgumentTypeError reports an argument of the wrong dynamic type. It marks
// a programming error in the caller, never bad candidate data.
type ArgumentTypeError struct {
	Operation string // e.g. "validate"
	Expected  string // e.g. "string"
	Got       string // the received type, or "null"
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("%s: invalid argument type, expected %s, got %s", e.Operation, e.Expected, e.Got)
}

// NewArgumentTypeError creates an ArgumentTypeError describing v's type.
func NewArgumentTypeError(operation, expected string, v any) *ArgumentTypeError {
	got := "null"
	if v != nil {
		got = fmt.Sprintf("%T", v)
	}
	return &ArgumentTypeError{
		Operation: operation,
		Expected:  expected,
		Got:       got,
	}
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsArgumentType returns true if err is or wraps an ArgumentTypeError.
func IsArgumentType(err error) bool {
	var target *ArgumentTypeError
	return errors.As(err, &target)
}
