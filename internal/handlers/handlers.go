// Package handlers holds the HTTP handlers of the login flow.
package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/painel/internal/auth"
	"github.com/nfrund/painel/internal/domain"
)

// SignInService authenticates sign-in attempts.
type SignInService interface {
	SignIn(ctx context.Context, provider string, opts auth.SignInOptions) (auth.Response, error)
}

// SessionStore reads and writes the visitor's authentication session.
type SessionStore interface {
	Get(c echo.Context) (*domain.Session, error)
	Create(c echo.Context, user *domain.User) (*domain.Session, error)
	Destroy(c echo.Context) error
}

// csrfToken returns the token set by echo's CSRF middleware, if installed.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
