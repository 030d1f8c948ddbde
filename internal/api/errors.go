// Package api contains the HTTP handlers and their request/response DTOs.
package api

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
