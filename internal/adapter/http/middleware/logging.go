package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one access line per request once the handler and
// echo's error handler have written the response. Entries on admin routes
// carry the acting user.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			event := log.WithLevel(levelFor(res.Status)).
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("route", c.Path()).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("bytes_out", res.Size).
				Dur("duration", time.Since(start)).
				Str("client_ip", c.RealIP())
			if ua := req.UserAgent(); ua != "" {
				event = event.Str("user_agent", ua)
			}
			if user, ok := CurrentUser(c); ok {
				event = event.Str("user_id", user.ID).Str("role", string(user.Role))
			}
			event.Msg("request")

			return nil
		}
	}
}

// levelFor maps a response status to the access log level.
func levelFor(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
