package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRefused = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")

func quick(attempts int) Policy {
	return Policy{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond, Multiplier: 2}
}

// failing returns an fn that fails n times before succeeding.
func failing(n int, err error, calls *int) func(context.Context) error {
	return func(context.Context) error {
		*calls++
		if *calls <= n {
			return err
		}
		return nil
	}
}

func TestDo(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		failures  int
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt succeeds", policy: quick(3), failures: 0, wantCalls: 1},
		{name: "recovers after two failures", policy: quick(4), failures: 2, wantCalls: 3},
		{name: "gives up", policy: quick(3), failures: 10, wantCalls: 3, wantErr: errRefused},
		{name: "zero attempts still tries once", policy: Policy{}, failures: 10, wantCalls: 1, wantErr: errRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), tt.policy, failing(tt.failures, errRefused, &calls))

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDo_ReportsEachRetry(t *testing.T) {
	var attempts []int
	p := quick(4).WithOnRetry(func(attempt int, err error, wait time.Duration) {
		attempts = append(attempts, attempt)
		assert.ErrorIs(t, err, errRefused)
		assert.LessOrEqual(t, wait, 4*time.Millisecond)
	})

	calls := 0
	require.NoError(t, Do(context.Background(), p, failing(2, errRefused, &calls)))
	assert.Equal(t, []int{1, 2}, attempts)
	assert.Nil(t, quick(4).OnRetry, "WithOnRetry copies the policy")
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	wrongPass := errors.New("WRONGPASS invalid username-password pair")

	calls := 0
	err := Do(context.Background(), quick(5), failing(10, NewPermanent(wrongPass), &calls))

	assert.Equal(t, 1, calls)
	assert.Same(t, wrongPass, err)
}

func TestDo_CancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 10, InitialDelay: time.Second}
	time.AfterFunc(20*time.Millisecond, cancel)

	calls := 0
	err := Do(ctx, p, failing(10, errRefused, &calls))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestDo_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, quick(3), failing(0, nil, &calls))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 50*time.Millisecond, backoff(time.Second, 50*time.Millisecond, 0.5))
	assert.Equal(t, 10*time.Millisecond, backoff(10*time.Millisecond, 0, 0))

	for range 20 {
		wait := backoff(100*time.Millisecond, 0, 0.2)
		assert.GreaterOrEqual(t, wait, 100*time.Millisecond)
		assert.LessOrEqual(t, wait, 120*time.Millisecond)
	}
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))
	assert.Equal(t, "permanent error", (&Permanent{}).Error())

	wrapped := NewPermanent(errRefused)
	assert.ErrorIs(t, wrapped, errRefused)
	assert.Equal(t, errRefused.Error(), wrapped.Error())
}
