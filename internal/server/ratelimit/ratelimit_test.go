package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/polish", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("1.2.3.4", "/polish", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 60, info.Limit)
	}
}

func TestLimiter_DeniesBeyondBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/polish", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/polish", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/polish", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.2.3.4", "/polish", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/polish", "POST")
	assert.True(t, allowed, "a fresh client gets its own bucket")
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/polish", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistBypassesLimits(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/polish", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BlacklistDeniesImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.2", "/polish", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.True(t, info.Blocked, "a blacklist denial carries the blocked marker")
}

func TestLimiter_QuotaDenialIsNotBlocked(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/polish", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("1.2.3.4", "/polish", "POST")
	require.False(t, allowed)
	assert.False(t, info.Blocked)
}

func TestLimiter_UnthrottledEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.EndpointConfigs = append(cfg.EndpointConfigs,
		EndpointConfig{Path: "/firehose", Method: "GET", Limit: 0})
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/firehose", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/anything", "POST")
	assert.True(t, allowed)
}

func TestLimiter_ReapIdleDropsStaleBuckets(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/polish", "POST")

	l.mu.RLock()
	count := len(l.buckets)
	l.mu.RUnlock()
	require.Equal(t, 1, count)

	// Backdate the bucket past the idle cutoff.
	l.mu.Lock()
	for _, b := range l.buckets {
		b.lastSeen = time.Now().Add(-2 * time.Hour)
	}
	l.mu.Unlock()

	l.reapIdle()

	l.mu.RLock()
	count = len(l.buckets)
	l.mu.RUnlock()
	assert.Equal(t, 0, count)
}

func TestBucket_RefillsOverTime(t *testing.T) {
	// 100 tokens/second so the refill is observable without a long sleep.
	b := newBucket(1, 100)

	allowed, _, _ := b.take()
	require.True(t, allowed)
	allowed, _, _ = b.take()
	require.False(t, allowed)

	time.Sleep(30 * time.Millisecond)
	allowed, _, _ = b.take()
	assert.True(t, allowed)
}
