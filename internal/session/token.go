package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/domain"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

// TokenTTL is how long a stored bearer token is kept.
const TokenTTL = 7 * 24 * time.Hour

// RefreshWindow is how close to expiry Initialize rotates the token.
const RefreshWindow = 24 * time.Hour

type storedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenHolder keeps the bearer token and persists it with an expiry.
// It implements domain.TokenSource for the REST client.
type TokenHolder struct {
	store storage.Store
	clock timeutil.Clock
	log   *logger.Logger

	mu    sync.RWMutex
	token storedToken
}

// NewTokenHolder loads a previously stored token, if any.
func NewTokenHolder(ctx context.Context, store storage.Store, opts ...Option) *TokenHolder {
	o := buildOptions("token", opts)
	h := &TokenHolder{store: store, clock: o.clock, log: o.log}

	data, err := store.Get(ctx, TokenStorageKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		h.log.Warn().Err(err).Msg("read stored token")
	default:
		if err := json.Unmarshal(data, &h.token); err != nil {
			h.log.Warn().Err(err).Msg("discarding corrupt stored token")
			h.token = storedToken{}
		}
	}
	return h
}

// Token returns the current token, or "" when none is stored or it expired.
func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token.Token == "" || !h.clock.Now().Before(h.token.ExpiresAt) {
		return ""
	}
	return h.token.Token
}

// Valid reports whether a usable token is held.
func (h *TokenHolder) Valid() bool {
	return h.Token() != ""
}

// ExpiresAt returns when the current token expires.
func (h *TokenHolder) ExpiresAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token.ExpiresAt
}

// ExpiresWithin reports whether a usable token is held that expires less
// than d from now.
func (h *TokenHolder) ExpiresWithin(d time.Duration) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	now := h.clock.Now()
	return h.token.Token != "" && now.Before(h.token.ExpiresAt) && !now.Add(d).Before(h.token.ExpiresAt)
}

// SetToken stores token for TokenTTL.
func (h *TokenHolder) SetToken(ctx context.Context, token string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = storedToken{Token: token, ExpiresAt: h.clock.Now().Add(TokenTTL)}
	data, err := json.Marshal(h.token)
	if err != nil {
		return err
	}
	return h.store.Set(ctx, TokenStorageKey, data)
}

// ClearToken forgets the token. Removal failures are logged.
func (h *TokenHolder) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = storedToken{}
	if err := h.store.Remove(context.Background(), TokenStorageKey); err != nil {
		h.log.Warn().Err(err).Msg("remove stored token")
	}
}

var _ domain.TokenSource = (*TokenHolder)(nil)
