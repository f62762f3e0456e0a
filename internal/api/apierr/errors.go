package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/draftelite/onboarding-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidTransition  = "INVALID_TRANSITION"
	CodeUnknownAccountType = "UNKNOWN_ACCOUNT_TYPE"
	CodeComingSoon         = "ACCOUNT_TYPE_COMING_SOON"
	CodeActionInFlight     = "ACTION_IN_FLIGHT"
	CodeUnderagePlayer     = "UNDERAGE_PLAYER"
	CodeInvalidDate        = "INVALID_DATE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeResendThrottled    = "RESEND_THROTTLED"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeUnknownPosition    = "UNKNOWN_POSITION"
	CodeUnknownFoot        = "UNKNOWN_PREFERRED_FOOT"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Form validation surfaces its message verbatim, one rule at a time.
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, validationErr.Message}}
	}

	switch {
	case errors.Is(err, model.ErrInvalidTransition):
		return &httpError{http.StatusConflict, APIError{CodeInvalidTransition, "Action not available on the current screen"}}
	case errors.Is(err, model.ErrUnknownAccountType):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownAccountType, "Unknown account type"}}
	case errors.Is(err, model.ErrAccountComingSoon):
		return &httpError{http.StatusConflict, APIError{CodeComingSoon, "Coach and scout account creation is not yet available"}}
	case errors.Is(err, model.ErrActionInFlight):
		return &httpError{http.StatusConflict, APIError{CodeActionInFlight, "Another submission is already in flight"}}
	case errors.Is(err, model.ErrUnderagePlayer):
		return &httpError{http.StatusForbidden, APIError{CodeUnderagePlayer, "Players under 18 need a parent or guardian to register"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Invalid date"}}
	case errors.Is(err, model.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, model.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "An account with this email already exists"}}
	case errors.Is(err, model.ErrNoSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
	case errors.Is(err, model.ErrResendThrottled):
		return &httpError{http.StatusTooManyRequests, APIError{CodeResendThrottled, "Please wait before requesting another email"}}
	case errors.Is(err, model.ErrProfileNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeProfileNotFound, "Profile not found"}}
	case errors.Is(err, model.ErrUnknownPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPosition, "Unknown playing position"}}
	case errors.Is(err, model.ErrUnknownPreferredFoot):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownFoot, "Unknown preferred foot"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An unexpected error occurred."}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An unexpected error occurred."}}
}
