// Package integration drives the REST client, the client-side stores and the
// admin directory against a seeded stub API served over real HTTP.
package integration

import (
	"context"
	"testing"

	"github.com/flight-search/travel-booking-client/internal/adapter/api"
	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/catalog"
	"github.com/flight-search/travel-booking-client/internal/directory"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/notify"
	"github.com/flight-search/travel-booking-client/internal/session"
	"github.com/flight-search/travel-booking-client/test/testutil"
)

// Client is one running instance of the booking client: its storage,
// token holder and REST client. Two Clients sharing a storage directory
// model a page reload.
type Client struct {
	API      *api.Client
	Store    storage.Store
	Tokens   *session.TokenHolder
	Notifier *notify.Recorder
}

// Env is a stub API plus the storage directory the clients persist to.
type Env struct {
	Stub *testutil.Stub
	Dir  string
}

// NewEnv starts a seeded stub API.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	return &Env{Stub: testutil.StartStub(t), Dir: t.TempDir()}
}

// NewClient opens file storage in the env directory and builds a REST
// client reading its token from it.
func (e *Env) NewClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	store, err := storage.Open(ctx, storage.Config{Backend: storage.BackendFile, Dir: e.Dir}, nil)
	if err != nil {
		t.Fatalf("Failed to open storage: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	rec := notify.NewRecorder()
	tokens := session.NewTokenHolder(ctx, store)

	cfg := api.DefaultConfig()
	cfg.BaseURL = e.Stub.BaseURL()
	client, err := api.New(cfg, api.WithTokenSource(tokens), api.WithNotifier(rec))
	if err != nil {
		t.Fatalf("Failed to build client: %v", err)
	}

	return &Client{API: client, Store: store, Tokens: tokens, Notifier: rec}
}

// SearchStore builds a search store over the client's storage.
func (c *Client) SearchStore(opts ...session.Option) *session.SearchStore {
	opts = append([]session.Option{session.WithNotifier(c.Notifier)}, opts...)
	return session.NewSearchStore(context.Background(), c.API, c.Store, opts...)
}

// AuthStore builds an auth store over the client's storage.
func (c *Client) AuthStore() *session.AuthStore {
	return session.NewAuthStore(context.Background(), c.API, c.Tokens, c.Store, session.WithNotifier(c.Notifier))
}

// Directory builds an admin listing controller.
func (c *Client) Directory(opts ...directory.Option) *directory.Controller {
	opts = append([]directory.Option{directory.WithNotifier(c.Notifier)}, opts...)
	return directory.New(c.API, opts...)
}

// LoginAdmin signs the client in with the demo admin account.
func (c *Client) LoginAdmin(t *testing.T) {
	t.Helper()
	c.login(t, catalog.DemoAdminEmail, catalog.DemoAdminPassword)
}

// LoginUser signs the client in with the demo traveller account.
func (c *Client) LoginUser(t *testing.T) {
	t.Helper()
	c.login(t, catalog.DemoUserEmail, catalog.DemoUserPassword)
}

func (c *Client) login(t *testing.T, email, password string) {
	t.Helper()
	if _, err := c.AuthStore().Login(context.Background(), domain.Credentials{Email: email, Password: password}); err != nil {
		t.Fatalf("Failed to log in as %s: %v", email, err)
	}
}

// BogotaMiami returns one-way criteria for the seeded BOG to MIA route
// departing day days after the stub was seeded.
func (e *Env) BogotaMiami(day int) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        "BOG",
		Destination:   "MIA",
		DepartureDate: e.Stub.DaysAhead(day),
		TripType:      domain.TripOneWay,
		Passengers:    1,
	}
}
