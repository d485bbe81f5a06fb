// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budget-buddy/backend/internal/domain/error"
	"github.com/budget-buddy/backend/internal/integration/entrypoint/dto"
)

// defaultWindowDuration is the time window the write budget applies to.
const defaultWindowDuration = 1 * time.Minute

// windowEntry tracks the writes of one client in the current window.
type windowEntry struct {
	writes    int
	resetTime time.Time
}

// WriteLimiter caps mutating requests per client IP. Reads are never limited,
// so dashboards and event streams keep working under load.
type WriteLimiter struct {
	mu             sync.Mutex
	entries        map[string]*windowEntry
	maxWrites      int
	windowDuration time.Duration
	now            func() time.Time
}

// NewWriteLimiter allows maxWritesPerMinute mutating requests per client and minute.
// A non-positive limit disables limiting.
func NewWriteLimiter(maxWritesPerMinute int) *WriteLimiter {
	return NewWriteLimiterWithWindow(maxWritesPerMinute, defaultWindowDuration)
}

// NewWriteLimiterWithWindow creates a limiter with a custom window.
func NewWriteLimiterWithWindow(maxWrites int, windowDuration time.Duration) *WriteLimiter {
	return &WriteLimiter{
		entries:        make(map[string]*windowEntry),
		maxWrites:      maxWrites,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces the write budget.
func (wl *WriteLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if wl.maxWrites <= 0 || !isWrite(c.Request.Method) {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if retryAfter, ok := wl.allow(clientIP); !ok {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// allow records a write for key. When the budget is spent it reports how long
// until the window resets.
func (wl *WriteLimiter) allow(key string) (time.Duration, bool) {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	now := wl.now()

	entry, exists := wl.entries[key]
	if !exists || now.After(entry.resetTime) {
		wl.entries[key] = &windowEntry{
			writes:    1,
			resetTime: now.Add(wl.windowDuration),
		}
		return 0, true
	}

	if entry.writes < wl.maxWrites {
		entry.writes++
		return 0, true
	}

	return entry.resetTime.Sub(now), false
}

// Cleanup removes expired entries.
func (wl *WriteLimiter) Cleanup() {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	now := wl.now()
	for key, entry := range wl.entries {
		if now.After(entry.resetTime) {
			delete(wl.entries, key)
		}
	}
}
