package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/strideout/journey-backend-go/pkg/response"
)

// rateLimiter tracks request timestamps per client within a sliding window.
type rateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	rl := &rateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go rl.sweep()
	return rl
}

// sweep drops clients whose entire history has aged out of the window.
func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for client, times := range rl.seen {
			kept := times[:0]
			for _, t := range times {
				if now.Sub(t) < rl.window {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(rl.seen, client)
			} else {
				rl.seen[client] = kept
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *rateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	times := rl.seen[client]

	kept := times[:0]
	for _, t := range times {
		if now.Sub(t) < rl.window {
			kept = append(kept, t)
		}
	}
	if len(kept) >= rl.limit {
		rl.seen[client] = kept
		return false
	}
	rl.seen[client] = append(kept, now)
	return true
}

// RateLimit limits each client IP to limit requests per window. Intended for
// the ingest and recompute routes, where every call can trigger a full
// analytics rebuild.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := newRateLimiter(limit, window)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			response.Error(c, http.StatusTooManyRequests, "too many requests, try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
