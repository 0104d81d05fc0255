package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

const loginFailedMessage = "Login failed"

// AuthState is a snapshot of the signed-in user.
type AuthState struct {
	User          *domain.User
	Authenticated bool
	Loading       bool
	LoginError    string
}

// AuthStore owns the signed-in user. The token itself lives in a
// TokenHolder shared with the REST client.
type AuthStore struct {
	client   domain.AuthClient
	tokens   *TokenHolder
	notifier notify.Sink
	log      *logger.Logger
	out      *writer

	mu       sync.Mutex
	state    AuthState
	snapshot uint64
}

type persistedAuth struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// NewAuthStore creates the store and rehydrates the persisted user. The
// state stays Loading until Initialize, Login or Logout runs.
func NewAuthStore(ctx context.Context, client domain.AuthClient, tokens *TokenHolder, store storage.Store, opts ...Option) *AuthStore {
	o := buildOptions("auth", opts)
	a := &AuthStore{
		client:   client,
		tokens:   tokens,
		notifier: o.notifier,
		log:      o.log,
		out:      newWriter(store, AuthStorageKey, o.log),
		state:    AuthState{Loading: true},
	}
	if saved, ok := load[persistedAuth](ctx, store, AuthStorageKey, o.log); ok {
		a.state.User = saved.User
		a.state.Authenticated = saved.IsAuthenticated && saved.User != nil
	}
	return a
}

// Login signs in and stores the returned token. Failures are recorded in
// LoginError; the REST client has already notified transport failures.
func (a *AuthStore) Login(ctx context.Context, creds domain.Credentials) (*domain.User, error) {
	a.update(ctx, func(st *AuthState) {
		st.Loading = true
		st.LoginError = ""
	})

	env, err := a.client.Login(ctx, creds)
	if err == nil && env.Data.Token == "" {
		err = domain.NewApplicationError(0, "", loginFailedMessage)
	}
	if err == nil {
		if serr := a.tokens.SetToken(ctx, env.Data.Token); serr != nil {
			a.log.Warn().Err(serr).Msg("persist token")
		}
	}
	if err != nil {
		a.update(ctx, func(st *AuthState) {
			st.Loading = false
			st.LoginError = domain.Message(err, loginFailedMessage)
		})
		a.log.Info().Str("email", creds.Email).Str("kind", domain.KindOf(err).String()).Msg("login failed")
		return nil, err
	}

	user := env.Data.User
	a.update(ctx, func(st *AuthState) {
		st.User = &user
		st.Authenticated = true
		st.Loading = false
	})
	a.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("logged in")
	a.notifier.Success(fmt.Sprintf("Welcome back, %s!", user.Name))
	return &user, nil
}

// Logout ends the session. The local session is cleared even when the
// server call fails.
func (a *AuthStore) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn().Err(err).Msg("logout request failed")
	}
	a.tokens.ClearToken()
	a.update(ctx, func(st *AuthState) {
		*st = AuthState{}
	})
	a.notifier.Info("You have been logged out")
}

// Initialize validates a stored token against GET /auth/me. Without a
// token, or when the server rejects it, the session ends up signed out.
// A valid token within RefreshWindow of expiry is rotated through
// POST /auth/refresh.
func (a *AuthStore) Initialize(ctx context.Context) {
	if !a.tokens.Valid() {
		a.update(ctx, func(st *AuthState) {
			st.User = nil
			st.Authenticated = false
			st.Loading = false
		})
		return
	}

	env, err := a.client.Me(ctx)
	if err != nil || (env.Data.ID == "" && env.Data.Email == "") {
		a.log.Info().Err(err).Msg("stored session is no longer valid")
		a.tokens.ClearToken()
		a.update(ctx, func(st *AuthState) {
			st.User = nil
			st.Authenticated = false
			st.Loading = false
		})
		return
	}

	user := env.Data
	if a.tokens.ExpiresWithin(RefreshWindow) {
		if refreshed, ok := a.refresh(ctx); ok && refreshed.ID != "" {
			user = refreshed
		}
	}
	a.update(ctx, func(st *AuthState) {
		st.User = &user
		st.Authenticated = true
		st.Loading = false
	})
}

// refresh swaps a token close to expiry for a new one. A failed refresh
// keeps the current token, which is still valid.
func (a *AuthStore) refresh(ctx context.Context) (domain.User, bool) {
	env, err := a.client.Refresh(ctx)
	if err == nil && env.Data.Token == "" {
		err = domain.NewApplicationError(0, "", "Token refresh failed")
	}
	if err != nil {
		a.log.Warn().Err(err).Time("expires_at", a.tokens.ExpiresAt()).Msg("token refresh failed")
		return domain.User{}, false
	}
	if err := a.tokens.SetToken(ctx, env.Data.Token); err != nil {
		a.log.Warn().Err(err).Msg("persist refreshed token")
	}
	a.log.Debug().Time("expires_at", a.tokens.ExpiresAt()).Msg("token refreshed")
	return env.Data.User, true
}

// ClearError clears LoginError.
func (a *AuthStore) ClearError() {
	a.update(context.Background(), func(st *AuthState) {
		st.LoginError = ""
	})
}

// IsAdmin reports whether the signed-in user may manage flights.
func (a *AuthStore) IsAdmin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Authenticated && a.state.User.IsAdmin()
}

// State returns a snapshot of the auth session.
func (a *AuthStore) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	st := a.state
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (a *AuthStore) update(ctx context.Context, fn func(st *AuthState)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(&a.state)
	a.snapshot++
	a.out.write(ctx, a.snapshot, persistedAuth{User: a.state.User, IsAuthenticated: a.state.Authenticated})
}
