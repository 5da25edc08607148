package errors

import (
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Feed collaborator errors
	ErrPermissionDenied = NewBaseError(
		http.StatusOK,
		"PERMISSION_DENIED",
		"Location permission was denied, default location is used",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Session is missing or invalid, please log in again",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"Storefront service is unreachable",
		"",
	)

	ErrServer = NewBaseError(
		http.StatusBadGateway,
		"SERVER_ERROR",
		"Storefront service returned an error",
		"",
	)

	// Feed session errors
	ErrFeedNotFound = NewBaseError(
		http.StatusNotFound,
		"FEED_NOT_FOUND",
		"Feed session not found or expired",
		"",
	)

	ErrFeedLimitReached = NewBaseError(
		http.StatusTooManyRequests,
		"FEED_LIMIT_REACHED",
		"Too many open feed sessions",
		"",
	)

	// Review errors
	ErrReviewPublishFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"REVIEW_PUBLISH_FAILED",
		"Review could not be submitted, please try again",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)

// KindOf maps an error returned by a feed collaborator to the ErrorKind stored
// on feed state. Unknown errors are reported as server errors.
func KindOf(err error) entity.ErrorKind {
	switch {
	case err == nil:
		return entity.ErrorKindNone
	case errors.Is(err, ErrPermissionDenied):
		return entity.ErrorKindPermissionDenied
	case errors.Is(err, ErrUnauthenticated):
		return entity.ErrorKindUnauthenticated
	case errors.Is(err, ErrNetwork):
		return entity.ErrorKindNetwork
	default:
		return entity.ErrorKindServer
	}
}
