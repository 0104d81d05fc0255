// Package response provides the envelope writers of the stub API.
// Every body is {success, message, data, error}.
package response

import (
	"github.com/labstack/echo/v4"
)

// Response is the envelope shared by every endpoint. Details carries
// per-field validation messages and is ignored by clients that do not
// know it.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Validation failed"
	MsgUnauthorized       = "Authentication required"
	MsgInvalidToken       = "Invalid or expired token"
	MsgInvalidCredentials = "Invalid email or password"
	MsgForbidden          = "Admin access required"
	MsgFlightNotFound     = "Flight not found"
	MsgRouteNotFound      = "Resource not found"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// Success creates a successful envelope.
func Success(data interface{}, message string) *Response {
	return &Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Failure creates a failed envelope.
func Failure(message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error:   message,
		Details: details,
	}
}

// JSON writes an envelope with the given status code.
func JSON(c echo.Context, statusCode int, body *Response) error {
	return c.JSON(statusCode, body)
}
