package domain

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "error without wrapped error",
			appErr:   ErrStaffUserNotFound,
			expected: "Staff user not found",
		},
		{
			name: "error with wrapped error",
			appErr: &AppError{
				Code:       "TEST_ERROR",
				Message:    "Test message",
				StatusCode: 500,
				Err:        errors.New("underlying error"),
			},
			expected: "Test message: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	appErr := &AppError{
		Code:       "TEST",
		Message:    "test",
		StatusCode: 500,
		Err:        underlying,
	}

	if got := appErr.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}

	// Test with nil error
	appErrNoWrap := ErrStaffUserNotFound
	if got := appErrNoWrap.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestAppError_WithError(t *testing.T) {
	underlying := errors.New("db connection failed")
	newErr := ErrInternal.WithError(underlying)

	if newErr.Code != ErrInternal.Code {
		t.Errorf("Code = %v, want %v", newErr.Code, ErrInternal.Code)
	}

	if newErr.StatusCode != ErrInternal.StatusCode {
		t.Errorf("StatusCode = %v, want %v", newErr.StatusCode, ErrInternal.StatusCode)
	}

	if newErr.Err != underlying {
		t.Errorf("Err = %v, want %v", newErr.Err, underlying)
	}

	// Check errors.Is still works
	if !errors.Is(newErr, underlying) {
		t.Errorf("errors.Is should return true for wrapped error")
	}
}

func TestErrorsAs(t *testing.T) {
	err := ErrUpstreamFetch.WithError(errors.New("connection refused"))

	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Errorf("errors.As should match AppError")
	}

	if appErr.Code != "UPSTREAM_FETCH_FAILED" {
		t.Errorf("Code = %v, want UPSTREAM_FETCH_FAILED", appErr.Code)
	}
}

func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		err        *AppError
		code       string
		statusCode int
	}{
		{ErrInternal, "INTERNAL_ERROR", 500},
		{ErrBadRequest, "BAD_REQUEST", 400},
		{ErrUnauthorized, "UNAUTHORIZED", 401},
		{ErrForbidden, "FORBIDDEN", 403},
		{ErrNotFound, "NOT_FOUND", 404},
		{ErrUpstreamFetch, "UPSTREAM_FETCH_FAILED", 502},
		{ErrSnapshotUnavailable, "SNAPSHOT_UNAVAILABLE", 503},
		{ErrInvalidQuery, "INVALID_QUERY", 422},
		{ErrInvalidPageSize, "INVALID_PAGE_SIZE", 422},
		{ErrInvalidPage, "INVALID_PAGE", 422},
		{ErrInvalidCredentials, "INVALID_CREDENTIALS", 401},
		{ErrAccountLocked, "ACCOUNT_LOCKED", 403},
		{ErrStaffUserNotFound, "STAFF_USER_NOT_FOUND", 404},
		{ErrStaffUserExists, "STAFF_USER_ALREADY_EXISTS", 409},
		{ErrTokenNotConfigured, "PROVIDER_TOKEN_NOT_CONFIGURED", 500},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %v, want %v", tt.err.StatusCode, tt.statusCode)
			}
		})
	}
}
