package apperror

import (
	"fmt"
	"net/http"
)

// Error is an application error carrying an HTTP status and a stable code.
// Internal holds the underlying cause for logging; it is never serialized,
// so adapter failures surface to clients with a redacted message only.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Common error definitions
var (
	// Authentication errors
	ErrUnauthorized = New(http.StatusUnauthorized, "unauthorized", "Could not validate credentials")
	ErrInvalidToken = New(http.StatusUnauthorized, "invalid_token", "Invalid or expired token")
	ErrBadLogin     = New(http.StatusUnauthorized, "bad_credentials", "Incorrect username or password")

	// Authorization errors
	ErrForbidden = New(http.StatusForbidden, "forbidden", "Not authorized")

	// Resource errors
	ErrNotFound     = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrUserNotFound = New(http.StatusNotFound, "user_not_found", "User not found")
	ErrConflict     = New(http.StatusBadRequest, "already_registered", "Already registered")

	// Validation errors
	ErrBadRequest       = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrBadIdentifier    = New(http.StatusBadRequest, "bad_identifier", "Invalid graph identifier")
	ErrInvalidRelation  = New(http.StatusBadRequest, "invalid_relation", "Unknown relation name")
	ErrDisallowedDomain = New(http.StatusBadRequest, "disallowed_email_domain", "Signups using common free email providers are not allowed. Please use an organizational email.")

	// Rate limiting
	ErrRateLimited = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")

	// Server errors
	ErrInternal   = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrDatabase   = New(http.StatusInternalServerError, "database_error", "Database operation failed")
	ErrPrediction = New(http.StatusInternalServerError, "prediction_error", "Prediction failed")
	ErrEmail      = New(http.StatusInternalServerError, "email_error", "Email delivery failed")
)

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type and ID
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

// NewInternal creates an internal error with a message and optional wrapped error
func NewInternal(message string, err error) *Error {
	return &Error{
		HTTPStatus: http.StatusInternalServerError,
		Code:       "internal_error",
		Message:    message,
		Internal:   err,
	}
}

// NewForbidden creates a forbidden error with a custom message
func NewForbidden(message string) *Error {
	return ErrForbidden.WithMessage(message)
}
