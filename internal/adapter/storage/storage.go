// Package storage persists small client-side state blobs (search session,
// auth session, token) between runs of the client. Values are opaque bytes;
// callers own the encoding.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/travel-booking-client/internal/infrastructure/logger"
	"github.com/flight-search/travel-booking-client/internal/infrastructure/retry"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value store for persisted client state.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Backend string
	Dir     string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// ConnectPolicy governs the startup ping of the redis backend.
	// The zero value uses retry.ConnectPolicy.
	ConnectPolicy retry.Policy
}

// Open builds the configured backend. The redis backend is pinged with
// retries before it is returned.
func Open(ctx context.Context, cfg Config, log *logger.Logger) (Store, error) {
	log = logger.OrNop(log).WithComponent("storage")

	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(cfg.Dir)
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := ping(ctx, client, cfg.ConnectPolicy, log); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		log.Debug().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("redis storage connected")
		return NewRedis(client, cfg.RedisKeyPrefix), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

type pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

func ping(ctx context.Context, client pinger, policy retry.Policy, log *logger.Logger) error {
	if policy.MaxAttempts == 0 {
		policy = retry.ConnectPolicy
	}
	policy = policy.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("redis ping failed, retrying")
	})

	return retry.Do(ctx, policy, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		err := client.Ping(pingCtx).Err()
		if isAuthError(err) {
			return retry.NewPermanent(err)
		}
		return err
	})
}

// isAuthError reports whether redis rejected the credentials. Waiting does
// not fix those.
func isAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "NOAUTH") || strings.HasPrefix(msg, "WRONGPASS") || strings.HasPrefix(msg, "NOPERM")
}
