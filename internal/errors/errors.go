package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when no valid session is present.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden is returned when the caller lacks the role or ownership required.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation is returned when input fails a content rule.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when the target record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrPlanNotFound is returned when a plan name does not resolve.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrProfileNotFound is returned when an authenticated identity has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidField is returned when an entitlement field name is not recognized.
	ErrInvalidField = errors.New("invalid permission")
	// ErrInvalidValue is returned when an entitlement value has the wrong type or range.
	ErrInvalidValue = errors.New("invalid value")
	// ErrBackend is returned when the data store refuses or fails an operation.
	ErrBackend = errors.New("backend error")

	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when trying to register an existing user.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrMailNotConfigured is returned when no mail provider key is set.
	ErrMailNotConfigured = errors.New("mail service is not configured")
)

// Validation wraps ErrValidation with a human-readable reason.
func Validation(msg string) error {
	return &wrapped{msg: msg, kind: ErrValidation}
}

// InvalidValue wraps ErrInvalidValue with a human-readable reason.
func InvalidValue(msg string) error {
	return &wrapped{msg: msg, kind: ErrInvalidValue}
}

// Backend wraps a store failure so it matches ErrBackend while keeping the cause.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &wrapped{msg: fmt.Sprintf("%s: %v", op, err), kind: ErrBackend, cause: err}
}

type wrapped struct {
	msg   string
	kind  error
	cause error
}

func (e *wrapped) Error() string { return e.msg }

func (e *wrapped) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mapping = []struct {
	target error
	status int
	code   string
}{
	{ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHENTICATED"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
	{ErrInvalidRefreshToken, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
	{ErrInvalidField, http.StatusBadRequest, "INVALID_FIELD"},
	{ErrInvalidValue, http.StatusBadRequest, "INVALID_VALUE"},
	{ErrPlanNotFound, http.StatusNotFound, "PLAN_NOT_FOUND"},
	{ErrProfileNotFound, http.StatusNotFound, "PROFILE_NOT_FOUND"},
	{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{ErrUserAlreadyExists, http.StatusConflict, "USER_ALREADY_EXISTS"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Backend and unknown
// errors collapse into a 500 without leaking the cause.
func MapErrorToHTTP(err error) *HTTPError {
	if err == nil {
		return nil
	}
	for _, m := range mapping {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.status, err.Error(), m.code)
		}
	}
	if errors.Is(err, ErrMailNotConfigured) {
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "MAIL_NOT_CONFIGURED")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
