package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientRateLimiter provides per-client rate limiting keyed by client IP
type ClientRateLimiter struct {
	limiters    map[string]*rateLimiterEntry
	mu          sync.RWMutex
	rate        rate.Limit // requests per second
	burst       int        // maximum burst size
	cleanupTick time.Duration
	entryTTL    time.Duration
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64       // Rate of requests allowed per second
	BurstSize         int           // Maximum burst size
	CleanupInterval   time.Duration // How often to clean up stale entries
	EntryTTL          time.Duration // How long to keep unused entries
}

// DefaultRateLimiterConfig returns sensible defaults
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	}
}

// NewClientRateLimiter creates a new per-client rate limiter
func NewClientRateLimiter(cfg RateLimiterConfig) *ClientRateLimiter {
	rl := &ClientRateLimiter{
		limiters:    make(map[string]*rateLimiterEntry),
		rate:        rate.Limit(cfg.RequestsPerSecond),
		burst:       cfg.BurstSize,
		cleanupTick: cfg.CleanupInterval,
		entryTTL:    cfg.EntryTTL,
	}

	go rl.cleanupLoop()

	return rl
}

// getLimiter returns the rate limiter for a specific client
func (rl *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.RLock()
	entry, exists := rl.limiters[key]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		entry.lastSeen = time.Now()
		rl.mu.Unlock()
		return entry.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double check after acquiring write lock
	if entry, exists := rl.limiters[key]; exists {
		entry.lastSeen = time.Now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[key] = &rateLimiterEntry{
		limiter:  limiter,
		lastSeen: time.Now(),
	}

	return limiter
}

// cleanupLoop periodically removes stale rate limiter entries
func (rl *ClientRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *ClientRateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-rl.entryTTL)
	for key, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
		}
	}
}

// Middleware returns a Gin middleware that applies per-client rate limiting
func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())

		if !limiter.Allow() {
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded. Please try again later.",
				"error":   "too_many_requests",
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}
