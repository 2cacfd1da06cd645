package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.False(t, isRetryableError(sql.ErrNoRows))
	assert.False(t, isRetryableError(context.DeadlineExceeded))
	assert.False(t, isRetryableError(context.Canceled))
	assert.False(t, isRetryableError(errors.New("syntax error at or near SELECT")))

	assert.True(t, isRetryableError(errors.New("dial tcp: connection refused")))
	assert.True(t, isRetryableError(errors.New("read: connection reset by peer")))
	assert.True(t, isRetryableError(errors.New("write: broken pipe")))
	assert.True(t, isRetryableError(errors.New("FATAL: sorry, too many clients already")))
}

func TestRetryWithBackoff_SucceedsAfterTransientFailures(t *testing.T) {
	config := RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}

	attempts := 0
	err := RetryWithBackoff(context.Background(), config, func() error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_PermanentErrorIsNotRetried(t *testing.T) {
	config := DefaultRetryConfig()
	config.InitialDelay = time.Millisecond

	attempts := 0
	permanent := errors.New("duplicate key value violates unique constraint")
	err := RetryWithBackoff(context.Background(), config, func() error {
		attempts++
		return permanent
	})

	assert.Equal(t, permanent, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoff_ExhaustsAttempts(t *testing.T) {
	config := RetryConfig{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
		Multiplier:   1.0,
		EnableRetry:  true,
	}

	attempts := 0
	transient := errors.New("connection reset")
	err := RetryWithBackoff(context.Background(), config, func() error {
		attempts++
		return transient
	})

	assert.Equal(t, transient, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryWithBackoff_Disabled(t *testing.T) {
	config := DefaultRetryConfig()
	config.EnableRetry = false

	attempts := 0
	err := RetryWithBackoff(context.Background(), config, func() error {
		attempts++
		return errors.New("connection refused")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
