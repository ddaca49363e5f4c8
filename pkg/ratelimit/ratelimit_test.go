package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitUnknownToolIsUnlimited(t *testing.T) {
	rl := New()
	for i := 0; i < 100; i++ {
		require.NoError(t, rl.Wait(t.Context(), "anything"))
	}
}

func TestWaitThrottles(t *testing.T) {
	rl := New()
	rl.Set("search", 1, 1)

	require.NoError(t, rl.Wait(t.Context(), "search"))

	// The bucket is empty; a short deadline cannot be met.
	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, rl.Wait(ctx, "search"))
}

func TestSetRemovesLimit(t *testing.T) {
	rl := New()
	rl.Set("search", 0.001, 1)
	require.NoError(t, rl.Wait(t.Context(), "search"))

	rl.Set("search", 0, 0)

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()
	assert.NoError(t, rl.Wait(ctx, "search"))
}
