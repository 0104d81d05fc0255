package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/flight-search/travel-booking-client/internal/domain"
)

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.Envelope[domain.LoginResult], error) {
	return do[domain.LoginResult](ctx, c, request{
		method:   http.MethodPost,
		path:     "/auth/login",
		body:     creds,
		fallback: "Login failed",
	})
}

// Logout calls POST /auth/logout. Any 2xx counts as success, whatever
// the body says.
func (c *Client) Logout(ctx context.Context) error {
	_, err := do[json.RawMessage](ctx, c, request{
		method: http.MethodPost,
		path:   "/auth/logout",
	})
	if domain.KindOf(err) == domain.KindApplication {
		return nil
	}
	return err
}

// Me calls GET /auth/me.
func (c *Client) Me(ctx context.Context) (domain.Envelope[domain.User], error) {
	return do[domain.User](ctx, c, request{
		method:   http.MethodGet,
		path:     "/auth/me",
		fallback: "Failed to load current user",
	})
}

// Refresh calls POST /auth/refresh.
func (c *Client) Refresh(ctx context.Context) (domain.Envelope[domain.LoginResult], error) {
	return do[domain.LoginResult](ctx, c, request{
		method:   http.MethodPost,
		path:     "/auth/refresh",
		fallback: "Failed to refresh session",
	})
}

var (
	_ domain.FlightSearchClient = (*Client)(nil)
	_ domain.AdminFlightClient  = (*Client)(nil)
	_ domain.AuthClient         = (*Client)(nil)
)
