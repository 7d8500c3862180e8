package dto

// ErrorResponse is the uniform error body produced by the error boundary and
// the 404 handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
