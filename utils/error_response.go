package utils

import "time"

// ErrorDetails is the error body returned by every endpoint.
type ErrorDetails struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Details   string    `json:"details"`
}

// NewErrorDetails stamps an error body with the current time.
func NewErrorDetails(message, details string) ErrorDetails {
	return ErrorDetails{
		Timestamp: time.Now(),
		Message:   message,
		Details:   details,
	}
}
