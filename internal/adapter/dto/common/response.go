package common

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error     string `json:"error" example:"Transcript is too short to analyze"`
	ErrorCode string `json:"errorCode" example:"VALIDATION_ERROR"`
	CanRetry  bool   `json:"canRetry" example:"false"`
}

// HealthResponse represents the health check body
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
