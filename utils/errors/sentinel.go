package errors

import (
	"errors"
)

// Sentinel errors shared across layers. Drivers and gateways wrap them with
// fmt.Errorf("...: %w") so callers can branch with errors.Is.
var (
	ErrNotFound                   = errors.New("not found")
	ErrConflict                   = errors.New("already exists")
	ErrInvalidInput               = errors.New("invalid input")
	ErrUnauthorized               = errors.New("unauthorized")
	ErrForbidden                  = errors.New("forbidden")
	ErrDatabaseUnavailable        = errors.New("database unavailable")
	ErrRateLimitExceeded          = errors.New("rate limit exceeded")
	ErrExternalServiceUnavailable = errors.New("external service unavailable")
	ErrOperationTimeout           = errors.New("operation timeout")
	ErrUnknownStack               = errors.New("unknown service stack")
	ErrProviderOutputInvalid      = errors.New("provider output invalid")
	ErrProviderDisabled           = errors.New("genai provider disabled")
)

// IsNotFound checks if an error represents a missing resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error represents a uniqueness violation
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidationError checks if an error represents invalid input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRetryableError determines if an error represents a condition that can be retried
func IsRetryableError(err error) bool {
	var appErr *AppContextError
	if errors.As(err, &appErr) && appErr.IsRetryable() {
		return true
	}
	return errors.Is(err, ErrRateLimitExceeded) ||
		errors.Is(err, ErrOperationTimeout) ||
		errors.Is(err, ErrExternalServiceUnavailable) ||
		errors.Is(err, ErrProviderOutputInvalid)
}
