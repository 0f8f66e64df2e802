// File: internal/api/error_response.go
package api

// ErrorResponse carries a single message, used for authentication and
// lookup failures.
type ErrorResponse struct {
	Message string `json:"message" example:"Job not found"`
}

// ErrorsResponse carries one or more messages, used for validation and
// business rule failures.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func Errors(msgs ...string) ErrorsResponse {
	return ErrorsResponse{Errors: msgs}
}
