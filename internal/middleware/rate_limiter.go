package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// TooManyAttemptsMessage is the body of a rate-limited response.
const TooManyAttemptsMessage = "Muitas tentativas. Tente novamente mais tarde."

// RateLimiter limits requests to perMinute per IP address for the routes it's
// applied to. The in-memory store suits single-instance deployments.
func RateLimiter(perMinute int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, TooManyAttemptsMessage)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
