package models

// ErrorResponse is the body of every non-2xx JSON response.
// Detail holds a human readable reason.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// AckResponse acknowledges an operation that has nothing else to return,
// such as a delete.
type AckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Version string `json:"version,omitempty"`
}
