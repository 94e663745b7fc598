package errors

import (
	"net/http"

	"pinmap/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same error code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrMissingCode = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CODE",
		"missing code",
		"",
	)

	ErrMissingVerifier = NewBaseError(
		http.StatusBadRequest,
		"MISSING_VERIFIER",
		"missing verifier",
		"",
	)

	// ErrSignInFailed never reaches the browser as JSON; the callback turns it into
	// a redirect carrying only the error code.
	ErrSignInFailed = NewBaseError(
		http.StatusUnauthorized,
		"SIGNIN_FAILED",
		"signin_failed",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, please slow down",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Invalid bookmark ID",
		"",
	)

	ErrInvalidShareToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SHARE_TOKEN",
		"Invalid shared place",
		"",
	)

	// Bookmark-related errors
	ErrBookmarkNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKMARK_NOT_FOUND",
		"Bookmark not found",
		"",
	)

	ErrBookmarkFetchFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOOKMARK_FETCH_FAILED",
		"Failed to fetch bookmarks",
		"",
	)

	ErrBookmarkSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOOKMARK_SAVE_FAILED",
		"Failed to save bookmark. Please try again.",
		"",
	)

	ErrBookmarkUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOOKMARK_UPDATE_FAILED",
		"Failed to update bookmark",
		"",
	)

	ErrBookmarkDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOOKMARK_DELETE_FAILED",
		"Failed to delete bookmark",
		"",
	)

	ErrShareFailed = NewBaseError(
		http.StatusInternalServerError,
		"SHARE_FAILED",
		"Failed to share bookmark",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
