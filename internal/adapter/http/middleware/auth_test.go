package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

type tokenTable map[string]domain.User

func (t tokenTable) Authenticate(token string) (domain.User, error) {
	u, ok := t[token]
	if !ok {
		return domain.User{}, errors.New("unknown token")
	}
	return u, nil
}

var testTokens = tokenTable{
	"admin-token": {ID: "1", Email: "admin@amadeus.com", Name: "Admin", Role: domain.RoleAdmin},
	"user-token":  {ID: "2", Email: "user@amadeus.com", Name: "Traveler", Role: domain.RoleUser},
}

func newAuthEcho() *echo.Echo {
	e := echo.New()
	protected := e.Group("/protected", RequireAuth(testTokens))
	protected.GET("/me", func(c echo.Context) error {
		user, _ := CurrentUser(c)
		return c.JSON(http.StatusOK, map[string]string{"id": user.ID, "token": CurrentToken(c)})
	})
	admin := protected.Group("/admin", RequireAdmin())
	admin.GET("", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func serve(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	e := newAuthEcho()

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
		wantError     string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantError: "Authentication required"},
		{name: "not a bearer token", authorization: "Basic YWRtaW4=", wantStatus: http.StatusUnauthorized, wantError: "Authentication required"},
		{name: "empty bearer", authorization: "Bearer   ", wantStatus: http.StatusUnauthorized, wantError: "Authentication required"},
		{name: "unknown token", authorization: "Bearer nope", wantStatus: http.StatusUnauthorized, wantError: "Invalid or expired token"},
		{name: "valid token", authorization: "Bearer user-token", wantStatus: http.StatusOK},
		{name: "scheme is case-insensitive", authorization: "bearer user-token", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, "/protected/me", tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, "2", body["id"])
			assert.Equal(t, "user-token", body["token"])
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	e := newAuthEcho()

	assert.Equal(t, http.StatusNoContent, serve(e, "/protected/admin", "Bearer admin-token").Code)

	rec := serve(e, "/protected/admin", "Bearer user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAdmin())

	assert.Equal(t, http.StatusUnauthorized, serve(e, "/admin", "").Code)
}

func TestRequestLogger_LogsAuthenticatedUser(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&logBuf)))
	e.GET("/me", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, RequireAuth(testTokens))

	serve(e, "/me", "Bearer admin-token")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "1", entry["user_id"])
	assert.Equal(t, "ADMIN", entry["role"])
}
