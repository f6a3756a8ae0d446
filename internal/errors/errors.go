// Package errors provides structured error types and error handling utilities.
package errors

import (
	"fmt"
)

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Validation creates an error for input validation failures.
func Validation(message string) error {
	return fmt.Errorf("VALIDATION_ERROR: %s", message)
}

// ValidationWithDetails creates a validation error carrying extra detail.
func ValidationWithDetails(message, details string) error {
	return fmt.Errorf("VALIDATION_ERROR: %s (%s)", message, details)
}
