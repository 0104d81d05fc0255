package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request envelope with the given message.
func BadRequest(c echo.Context, message string) error {
	return JSON(c, http.StatusBadRequest, Failure(message, nil))
}

// InvalidRequestBody writes a 400 Bad Request envelope for malformed bodies.
func InvalidRequestBody(c echo.Context) error {
	return BadRequest(c, MsgInvalidRequestBody)
}

// ValidationError writes a 422 envelope. The error is the first field
// message; details maps every failing field to its message.
func ValidationError(c echo.Context, message string, details map[string]string) error {
	if message == "" {
		message = MsgValidationFailed
	}
	return JSON(c, http.StatusUnprocessableEntity, Failure(message, details))
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c echo.Context, message string) error {
	if message == "" {
		message = MsgUnauthorized
	}
	return JSON(c, http.StatusUnauthorized, Failure(message, nil))
}

// Forbidden writes a 403 envelope.
func Forbidden(c echo.Context) error {
	return JSON(c, http.StatusForbidden, Failure(MsgForbidden, nil))
}

// NotFound writes a 404 envelope.
func NotFound(c echo.Context, message string) error {
	if message == "" {
		message = MsgRouteNotFound
	}
	return JSON(c, http.StatusNotFound, Failure(message, nil))
}

// RequestCancelled writes a 504 envelope for requests abandoned by the caller.
func RequestCancelled(c echo.Context) error {
	return JSON(c, http.StatusGatewayTimeout, Failure(MsgRequestCancelled, nil))
}

// InternalServerError writes a 500 envelope.
func InternalServerError(c echo.Context) error {
	return JSON(c, http.StatusInternalServerError, Failure(MsgInternalError, nil))
}
