package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
)

// Limiter messages
const (
	GlobalLimitMessage = "Too many requests, please try again later."
	WalletLimitMessage = "Too many wallet requests, please slow down."
	GiftsLimitMessage  = "Too many gift requests, please slow down."
	ShopLimitMessage   = "Too many shop requests, please slow down."
)

// IPRateLimiter counts requests per key in fixed windows. It is process
// local, so every replica enforces its own budget.
type IPRateLimiter struct {
	limit        int
	window       time.Duration
	timeProvider coreport.TimeProvider

	mu        sync.Mutex
	items     map[string]*rateLimitEntry
	lastSweep time.Time
}

type rateLimitEntry struct {
	windowStart time.Time
	count       int
}

// NewIPRateLimiter creates a limiter allowing limit requests per window.
// A limit of zero or less disables it.
func NewIPRateLimiter(limit int, window time.Duration, timeProvider coreport.TimeProvider) *IPRateLimiter {
	return &IPRateLimiter{
		limit:        limit,
		window:       window,
		timeProvider: timeProvider,
		items:        make(map[string]*rateLimitEntry),
	}
}

// Allow records one request for key. When the window budget is spent it
// returns false and the time left until the window resets.
func (r *IPRateLimiter) Allow(key string) (bool, time.Duration) {
	if r.limit <= 0 {
		return true, 0
	}

	now := r.timeProvider.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep(now)

	entry := r.items[key]
	if entry == nil || now.Sub(entry.windowStart) >= r.window {
		entry = &rateLimitEntry{windowStart: now}
		r.items[key] = entry
	}

	if entry.count >= r.limit {
		return false, entry.windowStart.Add(r.window).Sub(now)
	}

	entry.count++
	return true, 0
}

// Limit returns the request budget per window
func (r *IPRateLimiter) Limit() int {
	return r.limit
}

// sweep drops expired windows at most once per window
func (r *IPRateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.window {
		return
	}
	for key, entry := range r.items {
		if now.Sub(entry.windowStart) >= r.window {
			delete(r.items, key)
		}
	}
	r.lastSweep = now
}

// RateLimit rejects clients that exhausted the limiter budget with 429
func RateLimit(limiter *IPRateLimiter, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.ClientIP())
		if !allowed {
			seconds := int(retryAfter.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: message,
				Code:  errs.CodeTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
