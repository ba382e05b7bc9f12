package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBlocksOverLimit(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "create:1.2.3.4", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "request %d should pass", i)
	}

	ok, err := l.Allow(ctx, "create:1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	ok, err := l.Allow(ctx, "create:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "create:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Allow(ctx, "create:5.6.7.8", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "availability:1.2.3.4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
