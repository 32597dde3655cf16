package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/vietkitchen/recipes-api/internal/httputil"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// RateLimiter throttles requests per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	logger   *logger.Logger
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond with the
// given burst per client.
func NewRateLimiter(requestsPerSecond, burst int, log *logger.Logger) *RateLimiter {
	if log == nil {
		log = logger.NewDefault("ratelimit")
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		logger:   log,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Handler returns the rate limiting middleware handler.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			key = r.RemoteAddr
		}

		if !rl.getLimiter(key).Allow() {
			rl.logger.WithField("client", key).Warn("rate limit exceeded")
			httputil.WriteError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
