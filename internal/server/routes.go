package server

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/loginform"
	"github.com/nfrund/painel/internal/middleware"
)

// loginAttemptsPerMinute caps login submits per client IP.
const loginAttemptsPerMinute = 10

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(loginAttemptsPerMinute)
	requireSession := middleware.RequireSession(s.sessions, loginform.LoginPath)

	s.E.GET(loginform.LoginPath, s.authHandler.LoginGet)
	s.E.POST(loginform.LoginPath, s.authHandler.LoginPost, rateLimiter)
	s.E.GET(loginform.RegisterPath, s.authHandler.RegisterGet)
	s.E.POST("/logout", s.authHandler.Logout)

	s.E.GET(loginform.DashboardPath, s.dashboardHandler.DashboardGet, requireSession)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	s.E.GET("/metrics", echoprometheus.NewHandler())
}
