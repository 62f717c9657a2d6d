package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoffDelaySchedule(t *testing.T) {
	// 2s, 4s, 8s ... capped at 60s.
	assert.Equal(t, 2*time.Second, backoffDelay(0))
	assert.Equal(t, 4*time.Second, backoffDelay(1))
	assert.Equal(t, 8*time.Second, backoffDelay(2))
	assert.Equal(t, 60*time.Second, backoffDelay(5))
	assert.Equal(t, 60*time.Second, backoffDelay(10))
}

func TestWithRetryExhaustion(t *testing.T) {
	restore := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = restore }()

	calls := 0
	wantErr := errors.New("service unavailable")
	_, err := withRetry(context.Background(), func() (string, error) {
		calls++
		return "", wantErr
	})

	assert.Equal(t, maxAttempts, calls, "a permanently failing call is attempted exactly %d times", maxAttempts)
	assert.ErrorIs(t, err, wantErr)
}

func TestWithRetryRecoversAfterTransientFailure(t *testing.T) {
	restore := retryBaseDelay
	retryBaseDelay = time.Millisecond
	defer func() { retryBaseDelay = restore }()

	calls := 0
	got, err := withRetry(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("503")
		}
		return "# recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "# recovered", got)
	assert.Equal(t, 3, calls)
}

func TestWithRetryFirstTrySucceedsWithoutWaiting(t *testing.T) {
	start := time.Now()
	got, err := withRetry(context.Background(), func() (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Less(t, time.Since(start), time.Second, "no backoff wait before the first attempt")
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := withRetry(ctx, func() (string, error) {
		calls++
		return "", errors.New("boom")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation stops the retry loop during the backoff wait")
}
