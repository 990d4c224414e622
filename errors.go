package polydub

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType categorizes an API failure. The values match the machine
// codes the Polydub API puts in error response bodies, so the type tag
// and the wire code agree for classified errors.
type ErrorType string

const (
	ErrorTypeGeneric        ErrorType = "GENERIC"
	ErrorTypeAuthentication ErrorType = "UNAUTHORIZED"
	ErrorTypeNotFound       ErrorType = "NOT_FOUND"
	ErrorTypeRateLimit      ErrorType = "RATE_LIMIT_EXCEEDED"
	ErrorTypeValidation     ErrorType = "BAD_REQUEST"
)

// APIError is the single error value surfaced by every failing client
// operation. Every failure path inside the client, including network
// errors and timeouts, is normalized into one of these before it
// reaches the caller.
type APIError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Code       string
	Data       any
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("polydub: [%d %s] %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("polydub: %s", e.Message)
}

// Unwrap returns the underlying error, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a generic API error carrying only a message.
func NewAPIError(message string) *APIError {
	return &APIError{Type: ErrorTypeGeneric, Message: message}
}

// NewAuthenticationError creates the error raised for HTTP 401 responses.
func NewAuthenticationError(message string) *APIError {
	if message == "" {
		message = "Invalid API key"
	}
	return &APIError{
		Type:       ErrorTypeAuthentication,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Code:       "UNAUTHORIZED",
	}
}

// NewNotFoundError creates the error raised for HTTP 404 responses.
func NewNotFoundError(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return &APIError{
		Type:       ErrorTypeNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
		Code:       "NOT_FOUND",
	}
}

// NewRateLimitError creates the error raised for HTTP 429 responses.
func NewRateLimitError(message string) *APIError {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return &APIError{
		Type:       ErrorTypeRateLimit,
		Message:    message,
		StatusCode: http.StatusTooManyRequests,
		Code:       "RATE_LIMIT_EXCEEDED",
	}
}

// NewValidationError creates the error raised for HTTP 400 responses.
// data carries the structured validation detail from the response body.
func NewValidationError(message string, data any) *APIError {
	if message == "" {
		message = "Invalid request"
	}
	return &APIError{
		Type:       ErrorTypeValidation,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Code:       "BAD_REQUEST",
		Data:       data,
	}
}

// classifyStatus maps a non-success HTTP status plus the decoded error
// body onto the taxonomy. Statuses outside the classified set become
// generic errors that keep whatever the body carried.
func classifyStatus(status int, message, code string, data any) *APIError {
	switch status {
	case http.StatusUnauthorized:
		return NewAuthenticationError(message)
	case http.StatusNotFound:
		return NewNotFoundError(message)
	case http.StatusTooManyRequests:
		return NewRateLimitError(message)
	case http.StatusBadRequest:
		return NewValidationError(message, data)
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return &APIError{
			Type:       ErrorTypeGeneric,
			Message:    message,
			StatusCode: status,
			Code:       code,
			Data:       data,
		}
	}
}

// IsErrorType reports whether err is an APIError of the given type.
func IsErrorType(err error, errorType ErrorType) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == errorType
	}
	return false
}

// IsAPIError reports whether err is any APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsAuthenticationError reports whether err is the 401 taxonomy member.
func IsAuthenticationError(err error) bool {
	return IsErrorType(err, ErrorTypeAuthentication)
}

// IsNotFoundError reports whether err is the 404 taxonomy member.
func IsNotFoundError(err error) bool {
	return IsErrorType(err, ErrorTypeNotFound)
}

// IsRateLimitError reports whether err is the 429 taxonomy member.
func IsRateLimitError(err error) bool {
	return IsErrorType(err, ErrorTypeRateLimit)
}

// IsValidationError reports whether err is the 400 taxonomy member.
func IsValidationError(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}
