package errors

// ErrorCode is the stable code sent to clients in the errorCode field.
type ErrorCode string

const (
	ErrorCode_VALIDATION_ERROR    ErrorCode = "VALIDATION_ERROR"
	ErrorCode_NOT_FOUND           ErrorCode = "NOT_FOUND"
	ErrorCode_NETWORK_ERROR       ErrorCode = "NETWORK_ERROR"
	ErrorCode_SERVICE_BUSY        ErrorCode = "SERVICE_BUSY"
	ErrorCode_CONFIGURATION_ERROR ErrorCode = "CONFIGURATION_ERROR"
	ErrorCode_TIMEOUT_ERROR       ErrorCode = "TIMEOUT_ERROR"
	ErrorCode_SERVICE_UNAVAILABLE ErrorCode = "SERVICE_UNAVAILABLE"
	ErrorCode_DATABASE_ERROR      ErrorCode = "DATABASE_ERROR"
	ErrorCode_ANALYSIS_ERROR      ErrorCode = "ANALYSIS_ERROR"
	ErrorCode_UNKNOWN_ERROR       ErrorCode = "UNKNOWN_ERROR"
)

func (c ErrorCode) String() string {
	return string(c)
}
