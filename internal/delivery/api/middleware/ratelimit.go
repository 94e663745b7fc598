package middleware

import (
	"log/slog"

	deliverycontext "pinmap/internal/delivery/context"
	domainerrors "pinmap/internal/domain/errors"
	"pinmap/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter *ratelimit.KeyedRateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Handle returns 429 once the caller's bucket is empty.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.RealIP()
		if !m.limiter.Allow(key) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Rate limit exceeded",
				slog.String("ip", key),
				slog.String("path", c.Request().URL.Path),
			)

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
