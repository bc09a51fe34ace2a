package models

// Response is the JSON envelope of every API answer.
//
// On success Data carries the payload and Warnings lists partial failures
// (for example an image that could not be removed from the host). On
// failure Data is omitted and Message is a client-safe description.
type Response struct {
	StatusCode int       `json:"statusCode"`
	Data       any       `json:"data,omitempty"`
	Message    string    `json:"message"`
	Success    bool      `json:"success"`
	Warnings   []Warning `json:"warnings,omitempty"`
}

// NewSuccessResponse builds an envelope for a 2xx answer.
func NewSuccessResponse(statusCode int, data any, message string, warnings ...Warning) Response {
	return Response{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
		Warnings:   warnings,
	}
}

// NewErrorResponse builds an envelope for a 4xx/5xx answer.
func NewErrorResponse(statusCode int, message string) Response {
	return Response{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
	}
}
