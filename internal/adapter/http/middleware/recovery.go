package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
)

// Recover turns a handler panic into a logged 500 envelope so one broken
// request never takes the stub down.
func Recover(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				cause, ok := r.(error)
				if !ok {
					cause = fmt.Errorf("%v", r)
				}
				log.Error().
					Str("request_id", GetRequestID(c)).
					Str("route", c.Path()).
					AnErr("panic", cause).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")

				if !c.Response().Committed {
					err = response.InternalServerError(c)
				}
			}()

			return next(c)
		}
	}
}
