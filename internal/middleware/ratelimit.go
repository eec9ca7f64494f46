package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit returns per-caller rate limiting middleware using token buckets.
// Each caller gets a bucket filling at rps tokens/sec up to burst; an empty
// bucket rejects with 429. Callers are identified by API key when auth is
// enabled, otherwise by client IP — discovery runs are expensive (several
// upstream API calls each), so even the open deployment needs a ceiling.
//
// sync.Mutex protects the limiter map from concurrent goroutine access —
// a shared map with simple read/write is cleaner with a mutex than a channel.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)

	return func(c *gin.Context) {
		caller := c.ClientIP()
		if key, exists := c.Get("api_key"); exists {
			caller = key.(string)
		}

		mu.Lock()
		limiter, exists := limiters[caller]
		if !exists {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[caller] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
