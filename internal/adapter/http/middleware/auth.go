package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/travel-booking-client/internal/adapter/http/response"
	"github.com/flight-search/travel-booking-client/internal/domain"
)

const (
	userKey  = "auth_user"
	tokenKey = "auth_token"

	bearerPrefix = "Bearer "
)

// Authenticator resolves a bearer token to its user.
type Authenticator interface {
	Authenticate(token string) (domain.User, error)
}

// RequireAuth rejects requests without a valid bearer token with 401.
// The resolved user and token are stored on the context.
func RequireAuth(auth Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := BearerToken(c)
			if token == "" {
				return response.Unauthorized(c, response.MsgUnauthorized)
			}

			user, err := auth.Authenticate(token)
			if err != nil {
				return response.Unauthorized(c, response.MsgInvalidToken)
			}

			c.Set(userKey, user)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin users with 403. It must run after
// RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return response.Unauthorized(c, response.MsgUnauthorized)
			}
			if !user.IsAdmin() {
				return response.Forbidden(c)
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by RequireAuth.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userKey).(domain.User)
	if !ok {
		return nil, false
	}
	return &user, true
}

// CurrentToken returns the bearer token accepted by RequireAuth.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(tokenKey).(string)
	return token
}

// BearerToken extracts the token from the Authorization header, or "".
func BearerToken(c echo.Context) string {
	return parseBearer(c.Request().Header.Get(echo.HeaderAuthorization))
}

func parseBearer(header string) string {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
