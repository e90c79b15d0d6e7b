package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hangar7/flightlog/internal/model"
	"github.com/hangar7/flightlog/internal/services/auth"
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
	CodeValidationError    = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeAircraftNotFound   = "AIRCRAFT_NOT_FOUND"
	CodeFlightNotFound     = "FLIGHT_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
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
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Validation failures name the offending field
	var fieldErr *model.FieldError
	if errors.As(err, &fieldErr) {
		return &httpError{http.StatusBadRequest, APIError{
			CodeValidationError,
			fmt.Sprintf("Invalid value for field %q: %v", fieldErr.Field, fieldErr.Err),
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrAircraftNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAircraftNotFound, "Aircraft not found"}}
	case errors.Is(err, model.ErrFlightNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFlightNotFound, "Flight record not found"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrInvalidTime),
		errors.Is(err, model.ErrInvalidNumber),
		errors.Is(err, model.ErrFieldRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationError, err.Error()}}

	// Map auth errors. Credential failures stay generic on purpose: the
	// response must not reveal whether the username existed.
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
