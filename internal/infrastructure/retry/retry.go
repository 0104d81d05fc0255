// Package retry dials backing stores at startup with exponential backoff.
// Request paths never retry; a failed call is reported to the caller as is.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Policy bounds the attempts made by Do.
type Policy struct {
	MaxAttempts  int // includes the first attempt
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	JitterFactor float64 // 0.0 to 1.0 of the current delay

	// OnRetry runs before each wait with the attempt that just failed.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// ConnectPolicy suits dialing a store at startup.
var ConnectPolicy = Policy{
	MaxAttempts:  4,
	InitialDelay: 250 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithOnRetry returns a copy of p reporting each failed attempt to fn.
func (p Policy) WithOnRetry(fn func(attempt int, err error, wait time.Duration)) Policy {
	p.OnRetry = fn
	return p
}

// Do runs fn until it succeeds, returns a Permanent error, runs out of
// attempts or ctx is done. The last error is returned unwrapped.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	attempts := max(p.MaxAttempts, 1)
	delay := p.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err = fn(ctx); err == nil {
			return nil
		}
		var perm *Permanent
		if errors.As(err, &perm) {
			return perm.Err
		}
		if attempt >= attempts {
			return err
		}

		wait := backoff(delay, p.MaxDelay, p.JitterFactor)
		if p.OnRetry != nil {
			p.OnRetry(attempt, err, wait)
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if p.Multiplier > 0 {
			delay = time.Duration(float64(delay) * p.Multiplier)
		}
	}
}

func backoff(delay, maxDelay time.Duration, jitter float64) time.Duration {
	wait := delay + time.Duration(rand.Float64()*jitter*float64(delay))
	if maxDelay > 0 && wait > maxDelay {
		return maxDelay
	}
	return wait
}

// Permanent marks an error that retrying cannot fix, such as rejected
// credentials.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error { return p.Err }

// NewPermanent wraps err as non-retryable. A nil err stays nil.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}
