package middleware

import (
	"net/http"
	"time"

	"github.com/deppfellow/analytics/internal/errs"
	"github.com/deppfellow/analytics/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const (
	// RequestsPerSecond is the sustained rate allowed per client IP.
	RequestsPerSecond = 20
	// Burst is how many requests a client may send at once.
	Burst = 40
	// RateLimitMessage is returned to clients that exceed the limit.
	RateLimitMessage = "Too many requests, slow down"
	// limiterExpiry drops idle per-IP limiters from memory.
	limiterExpiry = 3 * time.Minute
)

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit enforces RequestsPerSecond per client IP using an in-memory store.
// Rejected requests get a 429 and are recorded as a New Relic event.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(RequestsPerSecond),
				Burst:     Burst,
				ExpiresIn: limiterExpiry,
			},
		),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewStatusError(http.StatusForbidden)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			r.server.Logger.Warn().
				Str("request_id", GetRequestID(c)).
				Str("identifier", identifier).
				Str("path", c.Path()).
				Msg("rate limit exceeded")

			return errs.NewStatusError(http.StatusTooManyRequests).
				WithMessage(RateLimitMessage)
		},
	})
}

func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
