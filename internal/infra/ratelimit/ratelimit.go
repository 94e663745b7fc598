// Package ratelimit provides a per-key token bucket limiter for inbound requests.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"pinmap/config"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// idleEviction is how long a key may go unused before its bucket is dropped.
const idleEviction = 10 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter gives every key (client IP) its own independent bucket.
type KeyedRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*keyedLimiter
	limit    rate.Limit
	burst    int
	enabled  bool
	now      func() time.Time
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New builds the limiter from config and evicts idle keys while the app runs.
func New(params Params) *KeyedRateLimiter {
	cfg := params.Config.RateLimit
	krl := NewKeyedRateLimiter(cfg.RequestsPerSecond, cfg.Burst, time.Now)
	krl.enabled = cfg.Enabled

	evictCtx, stopEviction := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go krl.evictLoop(evictCtx, idleEviction)

			return nil
		},
		OnStop: func(context.Context) error {
			stopEviction()

			return nil
		},
	})

	return krl
}

// NewKeyedRateLimiter creates an enabled limiter allowing rps requests per second
// with the given burst.
func NewKeyedRateLimiter(rps float64, burst int, now func() time.Time) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*keyedLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
		enabled:  true,
		now:      now,
	}
}

// Enabled reports whether requests are being throttled at all.
func (krl *KeyedRateLimiter) Enabled() bool {
	return krl.enabled
}

// Allow reports whether a request for key may proceed now.
func (krl *KeyedRateLimiter) Allow(key string) bool {
	if !krl.enabled {
		return true
	}

	krl.mu.Lock()
	defer krl.mu.Unlock()

	now := krl.now()
	entry, exists := krl.limiters[key]
	if !exists {
		entry = &keyedLimiter{limiter: rate.NewLimiter(krl.limit, krl.burst)}
		krl.limiters[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Evict drops buckets unused for longer than idle and returns how many were removed.
func (krl *KeyedRateLimiter) Evict(idle time.Duration) int {
	krl.mu.Lock()
	defer krl.mu.Unlock()

	cutoff := krl.now().Add(-idle)
	removed := 0
	for key, entry := range krl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(krl.limiters, key)
			removed++
		}
	}

	return removed
}

func (krl *KeyedRateLimiter) evictLoop(ctx context.Context, idle time.Duration) {
	ticker := time.NewTicker(idle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			krl.Evict(idle)
		}
	}
}
