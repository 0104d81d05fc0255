package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
)

func TestTokenHolder_SetAndExpire(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2025-05-20T12:00:00Z")
	store := storage.NewMemory()
	ctx := context.Background()

	h := NewTokenHolder(ctx, store, WithClock(clock))
	assert.Empty(t, h.Token())
	assert.False(t, h.Valid())

	require.NoError(t, h.SetToken(ctx, "jwt-abc"))
	assert.Equal(t, "jwt-abc", h.Token())
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), h.ExpiresAt())

	clock.AdvanceDays(6)
	assert.True(t, h.Valid())

	clock.AdvanceDays(1)
	assert.False(t, h.Valid(), "token expires after seven days")
}

func TestTokenHolder_ExpiresWithin(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		token   string
		want    bool
	}{
		{name: "fresh token", elapsed: time.Hour, token: "jwt-abc", want: false},
		{name: "exactly one day left", elapsed: TokenTTL - RefreshWindow, token: "jwt-abc", want: true},
		{name: "an hour left", elapsed: TokenTTL - time.Hour, token: "jwt-abc", want: true},
		{name: "expired", elapsed: TokenTTL, token: "jwt-abc", want: false},
		{name: "no token", elapsed: TokenTTL - time.Hour, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := timeutil.NewMockClockFromString("2025-05-20T12:00:00Z")
			ctx := context.Background()
			h := NewTokenHolder(ctx, storage.NewMemory(), WithClock(clock))
			if tt.token != "" {
				require.NoError(t, h.SetToken(ctx, tt.token))
			}
			clock.Advance(tt.elapsed)

			assert.Equal(t, tt.want, h.ExpiresWithin(RefreshWindow))
		})
	}
}

func TestTokenHolder_SurvivesRestart(t *testing.T) {
	clock := timeutil.NewMockClockFromString("2025-05-20T12:00:00Z")
	store := storage.NewMemory()
	ctx := context.Background()

	require.NoError(t, NewTokenHolder(ctx, store, WithClock(clock)).SetToken(ctx, "jwt-abc"))

	reloaded := NewTokenHolder(ctx, store, WithClock(clock))
	assert.Equal(t, "jwt-abc", reloaded.Token())
}

func TestTokenHolder_ClearToken(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	h := NewTokenHolder(ctx, store)
	require.NoError(t, h.SetToken(ctx, "jwt-abc"))

	h.ClearToken()

	assert.Empty(t, h.Token())
	_, err := store.Get(ctx, TokenStorageKey)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTokenHolder_CorruptStoredToken(t *testing.T) {
	store := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, TokenStorageKey, []byte("not-json")))

	h := NewTokenHolder(ctx, store)
	assert.Empty(t, h.Token())
}
