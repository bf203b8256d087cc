package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window per-IP request limiter. It is constructed
// once at startup and shared by reference between the handlers that need it;
// there is no package-level instance.
type RateLimiter struct {
	mu             sync.Mutex
	clients        map[string]*clientWindow
	requestsPerMin int
	lastCleanup    time.Time
	cleanupEvery   time.Duration
	staleAfter     time.Duration
}

type clientWindow struct {
	windowStart time.Time
	requests    int
}

// NewRateLimiter creates a limiter allowing requestsPerMinute requests per
// client IP per minute.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 120
	}
	return &RateLimiter{
		clients:        make(map[string]*clientWindow),
		requestsPerMin: requestsPerMinute,
		lastCleanup:    time.Now(),
		cleanupEvery:   5 * time.Minute,
		staleAfter:     10 * time.Minute,
	}
}

// Allow reports whether a request from the given IP is within the limit.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.maybeCleanup(now)

	client, exists := rl.clients[clientIP]
	if !exists || now.Sub(client.windowStart) > time.Minute {
		rl.clients[clientIP] = &clientWindow{windowStart: now, requests: 1}
		return true
	}

	client.requests++
	return client.requests <= rl.requestsPerMin
}

// maybeCleanup drops stale client entries. Caller must hold the lock.
func (rl *RateLimiter) maybeCleanup(now time.Time) {
	if now.Sub(rl.lastCleanup) < rl.cleanupEvery {
		return
	}
	rl.lastCleanup = now
	cutoff := now.Add(-rl.staleAfter)
	for ip, client := range rl.clients {
		if client.windowStart.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}

// ActiveClients returns the number of currently tracked client IPs.
func (rl *RateLimiter) ActiveClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// RateLimit returns a Gin middleware enforcing the given limiter.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    "RATE_LIMITED",
					"message": "Too many requests, slow down",
				},
			})
			return
		}
		c.Next()
	}
}
