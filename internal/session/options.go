// Package session holds the client-side state containers for a traveller's
// session: the flight search store, the auth store, the bearer token holder
// and the location lookup. State is persisted through a storage.Store so it
// survives restarts of the client.
package session

import (
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/timeutil"
	"github.com/flight-search/travel-booking-client/internal/notify"
)

// Storage keys.
const (
	SearchStorageKey = "flight-search-storage"
	AuthStorageKey   = "auth-storage"
	TokenStorageKey  = "auth_token"
)

type options struct {
	notifier notify.Sink
	log      *logger.Logger
	clock    timeutil.Clock
	guard    bool
}

// Option configures the stores in this package.
type Option func(*options)

// WithNotifier sets the notification sink.
func WithNotifier(n notify.Sink) Option {
	return func(o *options) { o.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock sets the clock used for token expiry.
func WithClock(c timeutil.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithStaleResponseGuard makes the search store discard responses of
// searches that were superseded by a later call. Without it the last
// response to arrive wins.
func WithStaleResponseGuard() Option {
	return func(o *options) { o.guard = true }
}

func buildOptions(component string, opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	o.notifier = notify.OrNop(o.notifier)
	o.log = logger.OrNop(o.log).WithComponent(component)
	o.clock = timeutil.OrReal(o.clock)
	return o
}
