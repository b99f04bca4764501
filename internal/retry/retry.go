// Package retry provides a small, reusable retry policy: bounded attempts,
// linear backoff, and a pluggable retryable-error predicate. It exists so
// network-facing callers share one tested loop instead of ad hoc sleeps.
package retry

import (
	"context"
	"time"
)

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	// Values below 1 are treated as 1.
	MaxAttempts int

	// BaseDelay is multiplied by the attempt number for the wait before
	// each retry: the wait after attempt n is BaseDelay * n (linear, not
	// exponential).
	BaseDelay time.Duration

	// Retryable decides whether an error is worth retrying. A nil
	// predicate retries every error.
	Retryable func(error) bool

	// sleep is replaced in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// Delay returns the wait before the retry that follows attempt n (1-based).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.BaseDelay * time.Duration(attempt)
}

// Do runs op up to MaxAttempts times, waiting Delay(n) after the n-th
// failed attempt. Attempts are strictly sequential. It returns nil on the
// first success, the last error once attempts are exhausted or the error is
// classified non-retryable, and the context error if the context ends
// while waiting.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}
		if err := sleep(ctx, p.Delay(attempt)); err != nil {
			return err
		}
	}
	return lastErr
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
