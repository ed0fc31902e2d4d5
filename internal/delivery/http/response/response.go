// Package response defines the wire shapes shared by all HTTP endpoints.
// Successful responses are the resource DTOs themselves; failures all use the
// single ErrorBody shape.
package response

import "github.com/labstack/echo/v4"

// ErrorBody is the uniform error payload: the HTTP status repeated in the
// body plus a human-readable message.
type ErrorBody struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// Error writes the uniform error payload with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorBody{Status: status, Error: message})
}

// TokenBody is the login response payload.
type TokenBody struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
