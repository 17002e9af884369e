// Package ratelimit provides per-client request throttling using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for one client+endpoint pair. Tokens refill at a
// steady rate up to the burst capacity.
type bucket struct {
	mu       sync.Mutex
	capacity int
	refill   float64 // tokens per second
	tokens   float64
	updated  time.Time // last refill
	lastSeen time.Time // last request, used for cleanup
}

func newBucket(capacity int, refill float64) *bucket {
	now := time.Now()
	return &bucket{
		capacity: capacity,
		refill:   refill,
		tokens:   float64(capacity),
		updated:  now,
		lastSeen: now,
	}
}

// take refills the bucket and consumes one token if available. It returns
// whether the request is allowed, the tokens remaining, and when the bucket
// will be full again.
func (b *bucket) take() (allowed bool, remaining int, reset time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.updated).Seconds() * b.refill
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.updated = now
	b.lastSeen = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	reset = now
	if b.tokens < float64(b.capacity) {
		deficit := float64(b.capacity) - b.tokens
		reset = now.Add(time.Duration(deficit / b.refill * float64(time.Second)))
	}
	return allowed, remaining, reset
}

// idleSince reports whether the bucket has been unused since the cutoff.
func (b *bucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastSeen.Before(cutoff)
}

// Info describes the rate limit state returned with every decision.
type Info struct {
	Allowed    bool
	Blocked    bool // client is blacklisted; the denial is not a quota decision
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Limiter throttles clients per endpoint. Buckets are created lazily and
// reaped after an hour of inactivity.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			Whitelist:       make(map[string]bool),
			Blacklist:       make(map[string]bool),
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow checks whether a request from the given client is allowed for the
// specified endpoint and method.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Blocked: true}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	// Limit <= 0 marks an unthrottled endpoint such as the health check.
	if ec.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	b := l.bucketFor(clientID+":"+endpoint+":"+method, ec)
	allowed, remaining, reset := b.take()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if retry := time.Until(reset); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

// bucketFor gets or creates the bucket for the given key.
func (l *Limiter) bucketFor(key string, ec *EndpointConfig) *bucket {
	l.mu.RLock()
	b, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return b
	}

	capacity := ec.Burst
	if capacity <= 0 {
		capacity = ec.Limit
	}
	refill := float64(ec.Limit) / ec.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	b = newBucket(capacity, refill)
	l.buckets[key] = b
	return b
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.reapIdle()
		case <-l.cleanupStop:
			return
		}
	}
}

// reapIdle drops buckets that have not seen a request for over an hour.
func (l *Limiter) reapIdle() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.idleSince(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
