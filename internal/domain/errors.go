package domain

import (
	"fmt"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    e.Message,
		StatusCode: e.StatusCode,
		Err:        err,
	}
}

// Pre-defined errors
var (
	ErrInternal = &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		StatusCode: 500,
	}

	ErrBadRequest = &AppError{
		Code:       "BAD_REQUEST",
		Message:    "Invalid request",
		StatusCode: 400,
	}

	ErrUnauthorized = &AppError{
		Code:       "UNAUTHORIZED",
		Message:    "Invalid or missing credentials",
		StatusCode: 401,
	}

	ErrForbidden = &AppError{
		Code:       "FORBIDDEN",
		Message:    "Access denied",
		StatusCode: 403,
	}

	ErrNotFound = &AppError{
		Code:       "NOT_FOUND",
		Message:    "Resource not found",
		StatusCode: 404,
	}

	ErrUpstreamFetch = &AppError{
		Code:       "UPSTREAM_FETCH_FAILED",
		Message:    "Provider API request failed",
		StatusCode: 502,
	}

	ErrSnapshotUnavailable = &AppError{
		Code:       "SNAPSHOT_UNAVAILABLE",
		Message:    "No account snapshot available yet",
		StatusCode: 503,
	}

	ErrInvalidQuery = &AppError{
		Code:       "INVALID_QUERY",
		Message:    "Invalid query parameters",
		StatusCode: 422,
	}

	ErrInvalidPageSize = &AppError{
		Code:       "INVALID_PAGE_SIZE",
		Message:    "Page size must be a positive integer",
		StatusCode: 422,
	}

	ErrInvalidPage = &AppError{
		Code:       "INVALID_PAGE",
		Message:    "Page number must be 1 or greater",
		StatusCode: 422,
	}

	ErrInvalidCredentials = &AppError{
		Code:       "INVALID_CREDENTIALS",
		Message:    "Invalid username or password",
		StatusCode: 401,
	}

	ErrAccountLocked = &AppError{
		Code:       "ACCOUNT_LOCKED",
		Message:    "Account locked. Please try again later",
		StatusCode: 403,
	}

	ErrStaffUserNotFound = &AppError{
		Code:       "STAFF_USER_NOT_FOUND",
		Message:    "Staff user not found",
		StatusCode: 404,
	}

	ErrStaffUserExists = &AppError{
		Code:       "STAFF_USER_ALREADY_EXISTS",
		Message:    "Staff user with this username already exists",
		StatusCode: 409,
	}

	ErrTokenNotConfigured = &AppError{
		Code:       "PROVIDER_TOKEN_NOT_CONFIGURED",
		Message:    "Provider API token is not configured",
		StatusCode: 500,
	}
)
