package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"mesa-booking/internal/handler/httperr"
	"mesa-booking/internal/pkg/clock"
	"mesa-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are dropped on the next sweep.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock, logger *slog.Logger) *RateLimiter {
	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}
	return &RateLimiter{
		visitors:  make(map[string]*visitor),
		limit:     limit,
		burst:     cfg.Burst,
		idleTTL:   cfg.IdleTTL,
		lastSweep: clk.Now(),
		clock:     clk,
		logger:    logger,
	}
}

func (r *RateLimiter) allow(key string) bool {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep(now)
	v, ok := r.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// sweep drops idle visitors at most once per idleTTL. Caller holds the lock.
func (r *RateLimiter) sweep(now time.Time) {
	if r.idleTTL <= 0 || now.Sub(r.lastSweep) < r.idleTTL {
		return
	}
	for key, v := range r.visitors {
		if now.Sub(v.lastSeen) >= r.idleTTL {
			delete(r.visitors, key)
		}
	}
	r.lastSweep = now
}

// Tracked reports how many clients currently hold a bucket.
func (r *RateLimiter) Tracked() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Middleware limits requests per client IP.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.allow(ip) {
			r.logger.Warn("Rate limit exceeded", "ip", ip, "path", c.Request.URL.Path,
				"request_id", GetRequestID(c))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyRequests,
				"Too many requests. Try again later.", nil)
			return
		}
		c.Next()
	}
}
