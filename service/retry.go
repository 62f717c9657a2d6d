package service

import (
	"context"
	"time"
)

const (
	// maxAttempts is the total number of tries per chunk, first call included.
	maxAttempts = 3
	// maxBackoff caps the doubling delay between attempts.
	maxBackoff = 60 * time.Second
)

// retryBaseDelay is the wait before the second attempt; it doubles each
// attempt after that. Tests override this to avoid real sleeps.
var retryBaseDelay = 2 * time.Second

// backoffDelay returns the wait after failed attempt n (0-indexed):
// 2s, 4s, 8s, ... capped at maxBackoff.
func backoffDelay(attempt int) time.Duration {
	d := retryBaseDelay << uint(attempt)
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// withRetry runs fn up to maxAttempts times with exponential backoff. Every
// error is treated as transient; after exhaustion the last error is
// returned. Waits are interruptible through ctx.
func withRetry(ctx context.Context, fn func() (string, error)) (string, error) {
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoffDelay(attempt - 1)):
			}
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
	}
	return "", lastErr
}
