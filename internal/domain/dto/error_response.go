package dto

import "time"

// ErrorResponse is the JSON error envelope returned by every failing
// endpoint. The message is safe to show to the end user; details carry
// the underlying error text when one exists.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"unsupported chart type \"pie\""`
	ErrorDetails string    `json:"error,omitempty" example:"..."`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// A nil err leaves the details empty.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
