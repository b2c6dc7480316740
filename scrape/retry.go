package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/coursedump"
)

// LogFunc is the signature for a diagnostic logging function.
type LogFunc func(format string, args ...any)

// Op is a retryable operation.
type Op func(ctx context.Context) error

// DefaultRetryDelays returns the backoff delays for retried operations:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// DoWithRetryDelays runs op with exponential-backoff retries, one attempt
// plus one retry per delay. It is meant for network-bound operations such as
// opening the curriculum page; the per-lesson interaction path deliberately
// fails fast and never retries, to bound total run time.
// The logger function, if provided, is called for each retry attempt.
func DoWithRetryDelays(ctx context.Context, op Op, logger LogFunc, delays []time.Duration) error {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger("  retry (attempt %d): %v", attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}

// Poll runs fn at the given interval until it reports done, it returns an
// error, the timeout elapses (ETIMEOUT), or the context is canceled. fn is
// invoked once immediately; transient conditions fn wants polled through
// should be reported as (false, nil), not as errors.
func Poll(ctx context.Context, interval, timeout time.Duration, fn func(ctx context.Context) (bool, error)) error {
	deadline := time.Now().Add(timeout)

	for {
		done, err := fn(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		if time.Now().Add(interval).After(deadline) {
			return coursedump.Errorf(coursedump.ETIMEOUT, "condition not met within %s", timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// sleep waits for d or until the context is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
