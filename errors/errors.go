package errors

import (
	"fmt"
	"net/http"
)

// AppError is the translated, user-facing form of a failure.
// Raw keeps the technical cause for server-side logging only.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	CanRetry bool
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the technical cause
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithRaw attaches the technical cause
func (e AppError) WithRaw(err error) AppError {
	e.Raw = err
	return e
}

// WithStatus overrides the HTTP status
func (e AppError) WithStatus(status int) AppError {
	e.HTTPCode = status
	return e
}

// Validation errors keep their message as-is, the user can act on it.
func ErrValidation(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_ERROR,
		Message:  message,
		CanRetry: false,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
		CanRetry: false,
	}
}

// Analysis service errors
func ErrNetwork() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_NETWORK_ERROR,
		Message:  "Unable to connect to the server. Please check your internet connection and try again.",
		CanRetry: true,
	}
}

func ErrServiceBusy() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SERVICE_BUSY,
		Message:  "The analysis service is temporarily busy. Please try again in a moment.",
		CanRetry: true,
	}
}

func ErrConfiguration() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CONFIGURATION_ERROR,
		Message:  "There's an issue with the analysis service configuration. Please contact support.",
		CanRetry: false,
	}
}

func ErrTimeout() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_TIMEOUT_ERROR,
		Message:  "The analysis took too long to complete. Please try with a shorter transcript or try again later.",
		CanRetry: true,
	}
}

func ErrServiceUnavailable() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SERVICE_UNAVAILABLE,
		Message:  "The analysis service is currently unavailable. Please try again later.",
		CanRetry: true,
	}
}

func ErrDatabase() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DATABASE_ERROR,
		Message:  "Unable to save the analysis. Please try again.",
		CanRetry: true,
	}
}

func ErrAnalysis() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_ANALYSIS_ERROR,
		Message:  "The analysis service encountered an error. Please try again.",
		CanRetry: true,
	}
}

func ErrUnknown() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UNKNOWN_ERROR,
		Message:  "An unexpected error occurred. Please try again. If the problem persists, contact support.",
		CanRetry: true,
	}
}
