package middleware

import (
	"net/http"
	"time"

	"kampuskart/config"
	"kampuskart/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	defaultAuthRate      = 5
	defaultAuthBurst     = 10
	defaultAuthRateReset = 3 * time.Minute
)

// NewAuthRateLimiter throttles the credential endpoints per client IP.
// A disabled limiter passes every request through.
func NewAuthRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	limit := rate.Limit(cfg.RequestsPerSecond)
	if cfg.RequestsPerSecond <= 0 {
		limit = defaultAuthRate
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultAuthBurst
	}

	expiresIn := cfg.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = defaultAuthRateReset
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     burst,
		ExpiresIn: expiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "FORBIDDEN", "Unable to identify client", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
		},
	})
}
