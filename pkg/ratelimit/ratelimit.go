// Package ratelimit throttles expensive tool calls.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter holds one token bucket per tool name. Tools without a limiter
// are not throttled.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
}

// New creates an empty rate limiter.
func New() *RateLimiter {
	return &RateLimiter{limiters: make(map[string]*rate.Limiter)}
}

// Set installs or replaces the limit for a tool: rps events per second with
// the given burst. A non-positive rps removes the limit.
func (rl *RateLimiter) Set(tool string, rps float64, burst int) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rps <= 0 {
		delete(rl.limiters, tool)
		return
	}
	rl.limiters[tool] = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
}

// Wait blocks until the limit for tool allows an event or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context, tool string) error {
	rl.mu.RLock()
	limiter, exists := rl.limiters[tool]
	rl.mu.RUnlock()

	if !exists {
		return nil
	}

	if err := limiter.Wait(ctx); err != nil {
		slog.Debug("rate limiter wait error", "tool", tool, "error", err)
		return err
	}
	return nil
}
