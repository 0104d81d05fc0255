package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the global middleware. RequestID runs first so every log
// line has an id; Recover is innermost so a panic still reaches the access
// log as a 500. Auth is installed per route group by RegisterRoutes.
func Setup(e *echo.Echo, log zerolog.Logger) {
	e.Use(
		RequestID(),
		RequestLogger(log),
		Recover(log),
	)
}
