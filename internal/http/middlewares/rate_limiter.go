package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
)

// RateLimiter caps requests per client IP over a fixed window. Windows are
// tracked in memory, so the limit is per process.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type bucket struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		buckets = make(map[string]*bucket)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			b, ok := buckets[key]
			if !ok || now.Sub(b.start) > window {
				b = &bucket{start: now}
				buckets[key] = b
			}

			if b.count >= limit {
				mu.Unlock()
				return c.JSON(http.StatusTooManyRequests, dto.Response{
					Message: "Too many requests",
					Data:    struct{}{},
				})
			}

			b.count++
			mu.Unlock()

			return next(c)
		}
	}
}
