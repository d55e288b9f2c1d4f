package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// The message never reveals whether the email exists.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// ErrUserAlreadyExists is returned when registering an existing email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrUserNotFound is returned when a user cannot be located.
	ErrUserNotFound = errors.New("user not found")
	// ErrArtistNotFound is returned when an artist cannot be located.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrForbidden is returned when the caller lacks the required permission.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrUserInactive is returned when an authenticated user has been deactivated.
	ErrUserInactive = errors.New("user not found or inactive")
)

// Error codes exposed in the response envelope.
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeResourceConflict = "RESOURCE_CONFLICT"
	CodeInternalError    = "INTERNAL_SERVER_ERROR"
)

// FieldError is a single field/message pair from request validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code and stable error code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Code: code}
}

// NewValidationError creates a 422 error carrying field/message pairs.
func NewValidationError(details []FieldError) *HTTPError {
	return &HTTPError{
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "validation failed",
		Code:       CodeValidationError,
		Details:    details,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidRefreshToken),
		errors.Is(err, ErrUserInactive):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), CodeUnauthorized)
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), CodeForbidden)
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrArtistNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), CodeResourceNotFound)
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), CodeResourceConflict)
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), CodeInternalError)
	}
}
