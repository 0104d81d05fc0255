package domain

import "context"

//go:generate mockgen -source=client.go -destination=mock_client.go -package=domain

// TokenSource supplies the bearer token attached to outgoing requests.
// ClearToken is called when the server rejects the token with 401.
type TokenSource interface {
	Token() string
	ClearToken()
}

// FlightSearchClient is the public flight search API.
//
// Every method returns a non-nil *APIError on failure. A 2xx response whose
// envelope says success=false is a KindApplication error carrying the
// server's message.
type FlightSearchClient interface {
	SearchFlights(ctx context.Context, req SearchRequest) (Envelope[SearchResultSet], error)
	Locations(ctx context.Context) (Envelope[[]Location], error)
	Destinations(ctx context.Context) (Envelope[LocationPair], error)
}

// AdminFlightClient is the admin flight management API.
type AdminFlightClient interface {
	ListAdminFlights(ctx context.Context, q ListQuery) (Envelope[FlightPage], error)
	SearchAdminFlights(ctx context.Context, q ListQuery) (Envelope[FlightPage], error)
	GetFlight(ctx context.Context, id int64) (Envelope[AdminFlight], error)
	CreateFlight(ctx context.Context, in FlightInput) (Envelope[AdminFlight], error)
	UpdateFlight(ctx context.Context, id int64, in FlightInput) (Envelope[AdminFlight], error)
	DeleteFlight(ctx context.Context, id int64) (Envelope[DeleteResult], error)
}

// AuthClient is the session API.
type AuthClient interface {
	Login(ctx context.Context, creds Credentials) (Envelope[LoginResult], error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (Envelope[User], error)
	Refresh(ctx context.Context) (Envelope[LoginResult], error)
}
