package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RateLimiter wraps redis_rate.Limiter for the HTTP surface. There is no
// multi-tenant auth in this single-user app, so limiting is per client IP
// rather than per API key — this guards the local server against a
// runaway polling loop in the UI layer, not against abuse from strangers.
type RateLimiter struct {
	limiter *redis_rate.Limiter
	enabled bool
	limit   int
}

// NewRateLimiter creates a rate limiter allowing limit requests per minute
// per client IP. If debugMode is true or redisClient is nil, rate limiting
// is disabled (the common case for a laptop running without Redis).
func NewRateLimiter(redisClient *redis.Client, debugMode bool, limit int) *RateLimiter {
	var limiter *redis_rate.Limiter
	if !debugMode && redisClient != nil {
		limiter = redis_rate.NewLimiter(redisClient)
	}

	return &RateLimiter{
		limiter: limiter,
		enabled: !debugMode && redisClient != nil,
		limit:   limit,
	}
}

// Middleware returns an HTTP middleware enforcing the per-IP limit.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := r.RemoteAddr
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			ip = xff
		}
		rateLimitKey := fmt.Sprintf("rate:ip:%s", ip)

		ctx := context.Background()
		res, err := rl.limiter.Allow(ctx, rateLimitKey, redis_rate.PerMinute(rl.limit))
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", res.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(res.ResetAfter).Unix()))

		if res.Allowed == 0 {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(res.RetryAfter.Seconds())))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
