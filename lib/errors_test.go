package lib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePayload(t *testing.T) {
	storeErr := &StoreError{Code: "42P01", Message: "relation does not exist", Detail: "table products"}

	payload, ok := StorePayload(storeErr)
	require.True(t, ok)
	assert.Equal(t, "42P01", payload.Code)
	assert.Equal(t, "relation does not exist", payload.Message)

	// Wrapped store errors still surface their payload
	wrapped := fmt.Errorf("query failed: %w", storeErr)
	payload, ok = StorePayload(wrapped)
	require.True(t, ok)
	assert.Equal(t, "42P01", payload.Code)

	_, ok = StorePayload(errors.New("plain error"))
	assert.False(t, ok)
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrNotFound)))
	assert.False(t, IsNotFound(ErrConflict))

	assert.True(t, IsConflict(ErrConflict))
	assert.False(t, IsConflict(errors.New("something else")))
}

func TestMapPgError_PassthroughForNonDriverErrors(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, MapPgError(plain))
}

func TestStoreError_Error(t *testing.T) {
	err := &StoreError{Code: "23503", Message: "foreign key violation"}
	assert.Equal(t, "store error 23503: foreign key violation", err.Error())
}
