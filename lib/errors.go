// ABOUTME: Error types and handling for the CatBytes library
// ABOUTME: Translates core errors into one structured error type with context

package catbytes

import (
	"errors"
	"fmt"

	coreerrors "github.com/ipierette/catbytes-portfolio/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates the caller sent bad input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeUpstream indicates the AI or search provider failed
	ErrorTypeUpstream ErrorType = "upstream"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeConfiguration indicates a missing credential or bad setting
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// translateError wraps core errors so callers only need this package
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		return NewError(ErrorTypeValidation, validationErr.Message).
			WithCause(err).
			WithContext("field", validationErr.Field)
	}

	var configErr *coreerrors.ConfigurationError
	if errors.As(err, &configErr) {
		return NewError(ErrorTypeConfiguration, configErr.Error()).
			WithCause(err).
			WithContext("setting", configErr.Setting)
	}

	if apiErr, ok := coreerrors.AsExternalAPI(err); ok {
		return NewError(ErrorTypeUpstream, "provider request failed").
			WithCause(err).
			WithContext("api", apiErr.API).
			WithContext("status", apiErr.StatusCode)
	}

	return NewError(ErrorTypeInternal, "operation failed").WithCause(err)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsUpstreamError checks if an error came from the AI or search provider
func IsUpstreamError(err error) bool {
	return hasType(err, ErrorTypeUpstream)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}
