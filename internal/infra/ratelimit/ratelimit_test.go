package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBurstAndRefill(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(60, 2)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, _ := limiter.Allow(ctx, "10.0.0.1")
	require.False(t, ok)

	other, _ := limiter.Allow(ctx, "10.0.0.2")
	require.True(t, other, "keys are independent")

	now = now.Add(time.Second)
	ok, _ = limiter.Allow(ctx, "10.0.0.1")
	require.True(t, ok, "one token refilled after a second at 60 rpm")
}

func TestMemoryLimiterForgetsIdleKeys(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	_, _ = limiter.Allow(context.Background(), "a")
	now = now.Add(10 * time.Minute)
	_, _ = limiter.Allow(context.Background(), "b")

	require.NotContains(t, limiter.visitors, "a")
}

func TestValkeyWindowKey(t *testing.T) {
	limiter := NewValkeyLimiter(nil, "", 10)
	at := time.Date(2025, 1, 1, 12, 30, 45, 0, time.UTC)

	key := limiter.windowKey("1.2.3.4", at)
	require.Equal(t, "ratelimit:1.2.3.4:1735734600", key)
	require.Equal(t, key, limiter.windowKey("1.2.3.4", at.Add(14*time.Second)))
	require.NotEqual(t, key, limiter.windowKey("1.2.3.4", at.Add(15*time.Second)))
}

func TestParseOptions(t *testing.T) {
	opt, err := ParseOptions("localhost:6379")
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6379"}, opt.InitAddress)

	opt, err = ParseOptions("redis://cache:6380/0")
	require.NoError(t, err)
	require.Equal(t, []string{"cache:6380"}, opt.InitAddress)

	_, err = ParseOptions("")
	require.Error(t, err)
}
