package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// OK writes a 200 OK envelope.
func OK(c echo.Context, data interface{}, message string) error {
	return JSON(c, http.StatusOK, Success(data, message))
}

// Created writes a 201 Created envelope.
func Created(c echo.Context, data interface{}, message string) error {
	return JSON(c, http.StatusCreated, Success(data, message))
}

// Rejected writes a 200 envelope with success=false. Clients treat it as an
// application-level failure rather than an HTTP error.
func Rejected(c echo.Context, message string) error {
	return JSON(c, http.StatusOK, Failure(message, nil))
}
