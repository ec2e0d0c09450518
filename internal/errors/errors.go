package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a request omits required fields.
	ErrMissingFields = errors.New("missing required fields")
	// ErrDuplicateEmail is returned when registering an email that is already taken.
	ErrDuplicateEmail = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("user not found")
	// ErrAdminNotFound is returned when the acting admin no longer exists.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrForbidden is returned when the acting user lacks the admin role.
	ErrForbidden = errors.New("admin privileges required")
	// ErrLastAdmin is returned when deleting the sole remaining admin.
	ErrLastAdmin = errors.New("cannot delete the last admin user")
	// ErrInvalidResetToken is returned when a reset token is unknown, expired or mismatched.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrCareCenterNotFound is returned when a care center lookup misses.
	ErrCareCenterNotFound = errors.New("care center not found")
	// ErrServiceNotFound is returned when a service lookup misses.
	ErrServiceNotFound = errors.New("service not found")
	// ErrScheduleInvalid is returned when a booking request is incomplete.
	ErrScheduleInvalid = errors.New("missing required booking fields")
	// ErrInvalidCard is returned when card validation fails.
	ErrInvalidCard = errors.New("invalid card details")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("invalid amount")
)

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Messages here are the
// user-visible strings surfaced by the frontend as inline alerts.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, "Missing required fields")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, ErrAdminNotFound):
		return NewHTTPError(http.StatusNotFound, "Admin user not found")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "Only admins can perform this action")
	case errors.Is(err, ErrLastAdmin):
		return NewHTTPError(http.StatusBadRequest, "Cannot delete the last admin user")
	case errors.Is(err, ErrInvalidResetToken):
		return NewHTTPError(http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, ErrCareCenterNotFound):
		return NewHTTPError(http.StatusNotFound, "Care center not found")
	case errors.Is(err, ErrServiceNotFound):
		return NewHTTPError(http.StatusNotFound, "Service not found")
	case errors.Is(err, ErrScheduleInvalid):
		return NewHTTPError(http.StatusBadRequest, "Missing required booking fields")
	case errors.Is(err, ErrInvalidCard):
		return NewHTTPError(http.StatusBadRequest, "Invalid card details")
	case errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, "Invalid amount")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Server error")
	}
}
