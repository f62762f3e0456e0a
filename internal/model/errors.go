package model

import "errors"

// Common errors used across the application
var (
	// Wizard errors
	ErrInvalidTransition  = errors.New("event not valid in current wizard mode")
	ErrUnknownAccountType = errors.New("unknown account type")
	ErrAccountComingSoon  = errors.New("coach and scout accounts are coming soon")
	ErrActionInFlight     = errors.New("another submission is already in flight")

	// Age policy errors
	ErrUnderagePlayer = errors.New("players under 18 need a parent or guardian to register")
	ErrInvalidDate    = errors.New("invalid date")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrNoSession          = errors.New("no active session")
	ErrResendThrottled    = errors.New("confirmation email resend throttled")

	// Profile errors
	ErrProfileNotFound      = errors.New("profile not found")
	ErrUnknownPosition      = errors.New("unknown playing position")
	ErrUnknownPreferredFoot = errors.New("unknown preferred foot")

	// Flag store errors
	ErrFlagNotFound = errors.New("flag not found")
)

// ValidationError is a local, pre-flight form error. It never reaches the
// network and is fully recoverable by correcting the input; only the first
// failing rule is surfaced.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
