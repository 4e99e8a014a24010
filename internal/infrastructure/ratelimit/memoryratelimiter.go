package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter keeps per-key hit timestamps in process memory. It is
// used when redis is disabled.
type MemoryRateLimiter struct {
	mu   sync.Mutex
	hits map[string][]time.Time
	now  func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{hits: make(map[string][]time.Time), now: time.Now}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	longest := time.Duration(0)
	for _, w := range config.windows() {
		if w.limit > 0 && w.duration > longest {
			longest = w.duration
		}
	}

	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if now.Sub(t) < longest {
			kept = append(kept, t)
		}
	}

	allowed := true
	for _, w := range config.windows() {
		if w.limit <= 0 {
			continue
		}
		count := 0
		for _, t := range kept {
			if now.Sub(t) < w.duration {
				count++
			}
		}
		if count >= w.limit {
			allowed = false
			break
		}
	}

	l.hits[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.hits, key)
	return nil
}
