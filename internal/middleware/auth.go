package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/domain"
)

// SessionContextKey is where RequireSession stores the visitor's session.
const SessionContextKey = "session"

// SessionReader loads the authentication session of a request.
type SessionReader interface {
	Get(c echo.Context) (*domain.Session, error)
}

// RequireSession protects routes that need a signed-in visitor. Anonymous
// visitors are sent to loginPath.
func RequireSession(sessions SessionReader, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := sessions.Get(c)
			if err != nil {
				// An undecodable cookie is treated as no session at all.
				FromContext(c.Request().Context()).Warn("Discarding unreadable session", "error", err)
			}
			if sess == nil {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}

			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by RequireSession.
func SessionFromContext(c echo.Context) *domain.Session {
	sess, _ := c.Get(SessionContextKey).(*domain.Session)
	return sess
}
