package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/flight-search/travel-booking-client/internal/adapter/storage"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
)

// blob is the on-disk layout shared by the persisted stores.
type blob[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// load reads key into a T. Missing or unreadable state is reported as
// absent and never fails the caller.
func load[T any](ctx context.Context, store storage.Store, key string, log *logger.Logger) (T, bool) {
	var b blob[T]
	data, err := store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return b.State, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("read persisted state")
		return b.State, false
	}
	if err := json.Unmarshal(data, &b); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding corrupt persisted state")
		return b.State, false
	}
	return b.State, true
}

// writer serialises writes of one key. Snapshots are numbered by the
// store under its own lock; a snapshot older than the last one written
// is dropped so a slow write cannot overwrite newer state.
type writer struct {
	mu      sync.Mutex
	store   storage.Store
	key     string
	written uint64
	log     *logger.Logger
}

func newWriter(store storage.Store, key string, log *logger.Logger) *writer {
	return &writer{store: store, key: key, log: log}
}

func (w *writer) write(ctx context.Context, seq uint64, state interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if seq <= w.written {
		return
	}

	data, err := json.Marshal(blob[interface{}]{State: state})
	if err != nil {
		w.log.Error().Err(err).Str("key", w.key).Msg("encode persisted state")
		return
	}
	if err := w.store.Set(context.WithoutCancel(ctx), w.key, data); err != nil {
		w.log.Warn().Err(err).Str("key", w.key).Msg("persist state")
		return
	}
	w.written = seq
}
