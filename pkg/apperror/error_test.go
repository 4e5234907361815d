package apperror

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "without internal error",
			err: &Error{
				HTTPStatus: http.StatusNotFound,
				Code:       "not_found",
				Message:    "Resource not found",
			},
			expected: "not_found: Resource not found",
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "internal_error",
				Message:    "Something went wrong",
				Internal:   errors.New("database connection failed"),
			},
			expected: "internal_error: Something went wrong (database connection failed)",
		},
		{
			name: "empty message",
			err: &Error{
				HTTPStatus: http.StatusBadRequest,
				Code:       "bad_request",
				Message:    "",
			},
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantNil bool
		wantMsg string
	}{
		{
			name: "nil internal error",
			err: &Error{
				HTTPStatus: http.StatusNotFound,
				Code:       "not_found",
				Message:    "Resource not found",
				Internal:   nil,
			},
			wantNil: true,
		},
		{
			name: "with internal error",
			err: &Error{
				HTTPStatus: http.StatusInternalServerError,
				Code:       "internal_error",
				Message:    "Something went wrong",
				Internal:   errors.New("underlying cause"),
			},
			wantNil: false,
			wantMsg: "underlying cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Unwrap()
			if tt.wantNil {
				if got != nil {
					t.Errorf("Unwrap() = %v, want nil", got)
				}
			} else {
				if got == nil {
					t.Error("Unwrap() = nil, want non-nil")
				} else if got.Error() != tt.wantMsg {
					t.Errorf("Unwrap().Error() = %q, want %q", got.Error(), tt.wantMsg)
				}
			}
		})
	}
}

func TestErrorWithInternal(t *testing.T) {
	original := &Error{
		HTTPStatus: http.StatusNotFound,
		Code:       "not_found",
		Message:    "Resource not found",
	}

	internalErr := errors.New("database query failed")
	withInternal := original.WithInternal(internalErr)

	if withInternal.Internal != internalErr {
		t.Errorf("WithInternal().Internal = %v, want %v", withInternal.Internal, internalErr)
	}
	if withInternal.HTTPStatus != original.HTTPStatus {
		t.Errorf("WithInternal().HTTPStatus = %d, want %d", withInternal.HTTPStatus, original.HTTPStatus)
	}
	if withInternal.Code != original.Code {
		t.Errorf("WithInternal().Code = %q, want %q", withInternal.Code, original.Code)
	}
	if withInternal.Message != original.Message {
		t.Errorf("WithInternal().Message = %q, want %q", withInternal.Message, original.Message)
	}

	// Verify original is not modified
	if original.Internal != nil {
		t.Error("Original error was modified")
	}
}

func TestErrorWithMessage(t *testing.T) {
	original := &Error{
		HTTPStatus: http.StatusBadRequest,
		Code:       "bad_request",
		Message:    "Original message",
		Internal:   errors.New("internal"),
	}

	newMessage := "Custom message"
	withMessage := original.WithMessage(newMessage)

	if withMessage.Message != newMessage {
		t.Errorf("WithMessage().Message = %q, want %q", withMessage.Message, newMessage)
	}
	if withMessage.HTTPStatus != original.HTTPStatus {
		t.Errorf("WithMessage().HTTPStatus = %d, want %d", withMessage.HTTPStatus, original.HTTPStatus)
	}
	if withMessage.Code != original.Code {
		t.Errorf("WithMessage().Code = %q, want %q", withMessage.Code, original.Code)
	}
	if withMessage.Internal != original.Internal {
		t.Errorf("WithMessage().Internal = %v, want %v", withMessage.Internal, original.Internal)
	}

	// Verify original is not modified
	if original.Message != "Original message" {
		t.Error("Original error was modified")
	}
}

func TestNew(t *testing.T) {
	err := New(http.StatusNotFound, "not_found", "Resource not found")
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("New().HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusNotFound)
	}
	if err.Code != "not_found" {
		t.Errorf("New().Code = %q, want %q", err.Code, "not_found")
	}
	if err.Message != "Resource not found" {
		t.Errorf("New().Message = %q, want %q", err.Message, "Resource not found")
	}
	if err.Internal != nil {
		t.Error("New().Internal should be nil")
	}
}

func TestNewBadRequest(t *testing.T) {
	err := NewBadRequest("Invalid email format")
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("NewBadRequest().HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusBadRequest)
	}
	if err.Code != "bad_request" {
		t.Errorf("NewBadRequest().Code = %q, want %q", err.Code, "bad_request")
	}
	if err.Message != "Invalid email format" {
		t.Errorf("NewBadRequest().Message = %q, want %q", err.Message, "Invalid email format")
	}
}

func TestNewNotFound(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		id           string
		wantMessage  string
	}{
		{
			name:         "entity not found",
			resourceType: "entity",
			id:           "BRCA1",
			wantMessage:  "entity 'BRCA1' not found",
		},
		{
			name:         "user not found",
			resourceType: "user",
			id:           "alice",
			wantMessage:  "user 'alice' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFound(tt.resourceType, tt.id)
			if err.HTTPStatus != http.StatusNotFound {
				t.Errorf("NewNotFound().HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusNotFound)
			}
			if err.Code != "not_found" {
				t.Errorf("NewNotFound().Code = %q, want %q", err.Code, "not_found")
			}
			if err.Message != tt.wantMessage {
				t.Errorf("NewNotFound().Message = %q, want %q", err.Message, tt.wantMessage)
			}
		})
	}
}

func TestNewInternal(t *testing.T) {
	internalErr := errors.New("connection timeout")
	err := NewInternal("Database query failed", internalErr)
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("NewInternal().HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusInternalServerError)
	}
	if err.Code != "internal_error" {
		t.Errorf("NewInternal().Code = %q, want %q", err.Code, "internal_error")
	}
	if err.Internal != internalErr {
		t.Errorf("NewInternal().Internal = %v, want %v", err.Internal, internalErr)
	}
}

func TestNewForbidden(t *testing.T) {
	err := NewForbidden("Incorrect admin password or not authorized")
	if err.HTTPStatus != http.StatusForbidden {
		t.Errorf("NewForbidden().HTTPStatus = %d, want %d", err.HTTPStatus, http.StatusForbidden)
	}
	if err.Code != "forbidden" {
		t.Errorf("NewForbidden().Code = %q, want %q", err.Code, "forbidden")
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantStatus int
		wantCode   string
	}{
		{"ErrUnauthorized", ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"ErrInvalidToken", ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"ErrBadLogin", ErrBadLogin, http.StatusUnauthorized, "bad_credentials"},
		{"ErrForbidden", ErrForbidden, http.StatusForbidden, "forbidden"},
		{"ErrNotFound", ErrNotFound, http.StatusNotFound, "not_found"},
		{"ErrUserNotFound", ErrUserNotFound, http.StatusNotFound, "user_not_found"},
		{"ErrConflict", ErrConflict, http.StatusBadRequest, "already_registered"},
		{"ErrBadRequest", ErrBadRequest, http.StatusBadRequest, "bad_request"},
		{"ErrBadIdentifier", ErrBadIdentifier, http.StatusBadRequest, "bad_identifier"},
		{"ErrInvalidRelation", ErrInvalidRelation, http.StatusBadRequest, "invalid_relation"},
		{"ErrDisallowedDomain", ErrDisallowedDomain, http.StatusBadRequest, "disallowed_email_domain"},
		{"ErrRateLimited", ErrRateLimited, http.StatusTooManyRequests, "rate_limited"},
		{"ErrInternal", ErrInternal, http.StatusInternalServerError, "internal_error"},
		{"ErrDatabase", ErrDatabase, http.StatusInternalServerError, "database_error"},
		{"ErrPrediction", ErrPrediction, http.StatusInternalServerError, "prediction_error"},
		{"ErrEmail", ErrEmail, http.StatusInternalServerError, "email_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.HTTPStatus != tt.wantStatus {
				t.Errorf("%s.HTTPStatus = %d, want %d", tt.name, tt.err.HTTPStatus, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("%s.Code = %q, want %q", tt.name, tt.err.Code, tt.wantCode)
			}
		})
	}
}
