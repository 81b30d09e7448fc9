// Package ratelimit provides per-key token bucket rate limiting for the MCP
// inference tools.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrLimited is wrapped by CheckLimit when a tool has no tokens left.
var ErrLimited = errors.New("rate limit exceeded")

// Limit describes one token bucket.
type Limit struct {
	Rate  float64 // tokens per second
	Burst int     // bucket size and initial token count
}

// Limiter implements a per-key token bucket rate limiter.
// It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   Limit
	nowFunc func() time.Time
}

type bucket struct {
	tokens    float64
	lastCheck time.Time
}

// NewLimiter creates a rate limiter with the given rate (tokens/sec) and burst size.
func NewLimiter(rate float64, burst int) *Limiter {
	return &Limiter{
		buckets: make(map[string]*bucket),
		limit:   Limit{Rate: rate, Burst: burst},
		nowFunc: time.Now,
	}
}

// Allow takes one token from key's bucket and reports whether one was available.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.refill(key)
	if b.tokens < 1.0 {
		return false
	}
	b.tokens--
	return true
}

// Tokens returns the tokens currently available to key.
func (l *Limiter) Tokens(key string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refill(key).tokens
}

// refill tops up key's bucket for the time elapsed since the last check.
// Callers hold l.mu.
func (l *Limiter) refill(key string) *bucket {
	now := l.nowFunc()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(l.limit.Burst), lastCheck: now}
		l.buckets[key] = b
		return b
	}

	if elapsed := now.Sub(b.lastCheck).Seconds(); elapsed > 0 {
		b.tokens += l.limit.Rate * elapsed
		if b.tokens > float64(l.limit.Burst) {
			b.tokens = float64(l.limit.Burst)
		}
		b.lastCheck = now
	}
	return b
}

// ToolLimiters maps tool names to their rate limiters.
type ToolLimiters map[string]*Limiter

// DefaultLimits are the per-tool limits of the MCP server. Inference is
// cheap, so the limits only guard against runaway clients.
func DefaultLimits() map[string]Limit {
	return map[string]Limit{
		"fuzzy_infer": {Rate: 50, Burst: 100},
		"fuzzy_trace": {Rate: 10, Burst: 20},
		"fuzzy_sets":  {Rate: 1, Burst: 5},
	}
}

// NewToolLimiters creates one limiter per entry of limits.
func NewToolLimiters(limits map[string]Limit) ToolLimiters {
	out := make(ToolLimiters, len(limits))
	for tool, lim := range limits {
		out[tool] = NewLimiter(lim.Rate, lim.Burst)
	}
	return out
}

// CheckLimit checks the rate limit for a given tool name.
// Tools without a configured limiter are always allowed.
func CheckLimit(limiters ToolLimiters, toolName string) error {
	limiter, ok := limiters[toolName]
	if !ok {
		return nil
	}

	if !limiter.Allow(toolName) {
		return fmt.Errorf("%s: %w, please try again shortly", toolName, ErrLimited)
	}

	return nil
}
