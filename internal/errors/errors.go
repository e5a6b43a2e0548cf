package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin relay
var (
	// Session errors
	ErrRefreshRejected  = errors.New("refresh token rejected")
	ErrIncompleteTokens = errors.New("incomplete token payload")

	// Inbound request errors
	ErrMalformedBody  = errors.New("malformed request body")
	ErrBodyTooLarge   = errors.New("request body too large")
	ErrInvalidRequest = errors.New("invalid request")

	// Backend errors
	ErrBackendUnavailable = errors.New("bot api unavailable")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
