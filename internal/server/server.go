package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"

	"github.com/nfrund/painel/internal/auth"
	"github.com/nfrund/painel/internal/config"
	"github.com/nfrund/painel/internal/database"
	"github.com/nfrund/painel/internal/domain"
	"github.com/nfrund/painel/internal/handlers"
	"github.com/nfrund/painel/internal/middleware"
	"github.com/nfrund/painel/internal/rendering"
	appsession "github.com/nfrund/painel/internal/session"
	"github.com/nfrund/painel/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB // nil unless USER_STORE=surreal
	Cfg config.Provider

	userStore        domain.CredentialsStore
	sessions         *appsession.Service
	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// The echoprometheus collectors live in the default registry, which accepts
// each of them once per process.
var httpMetrics = sync.OnceValue(func() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem: "painel",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	})
})

// New creates a new Server instance.
func New(ctx context.Context, cfg config.Provider) (*Server, error) {
	userStore, db, err := newUserStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := seedDemoUser(ctx, cfg, userStore); err != nil {
		return nil, err
	}

	authService, err := auth.NewService(cfg.GetAppBaseURL(), auth.NewCredentialsProvider(userStore))
	if err != nil {
		return nil, err
	}
	sessions := appsession.NewService(cfg.GetSessionMaxAge(), cfg.GetSessionSecure())
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.HideBanner = true
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())
	e.Use(httpMetrics())
	e.Use(session.Middleware(appsession.NewCookieStore(
		cfg.GetSessionSecret(), cfg.GetSessionMaxAge(), cfg.GetSessionSecure(),
	)))
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:_csrf,header:X-CSRF-Token",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.GetSessionSecure(),
		CookieSameSite: http.SameSiteLaxMode,
	}))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	e.Renderer = renderer

	return &Server{
		E:                e,
		DB:               db,
		Cfg:              cfg,
		userStore:        userStore,
		sessions:         sessions,
		authHandler:      handlers.NewAuthHandler(authService, sessions, renderer),
		dashboardHandler: handlers.NewDashboardHandler(renderer),
	}, nil
}

// UserStore is a getter for the server's credentials store, useful for testing.
func (s *Server) UserStore() domain.CredentialsStore {
	return s.userStore
}

func newUserStore(ctx context.Context, cfg config.Provider) (domain.CredentialsStore, *surrealdb.DB, error) {
	switch cfg.GetUserStore() {
	case config.UserStoreSurreal:
		db, err := database.NewDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		return database.NewSurrealUserStore(db), db, nil
	case config.UserStoreMemory:
		slog.Warn("Using the in-memory user store; accounts are lost on restart")
		return database.NewMemoryUserStore(0), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown user store %q", cfg.GetUserStore())
	}
}

// seedDemoUser creates the configured demo account if it does not exist yet.
func seedDemoUser(ctx context.Context, cfg config.Provider, store domain.CredentialsStore) error {
	email, password := cfg.GetDemoEmail(), cfg.GetDemoPassword()
	if email == "" || password == "" {
		return nil
	}
	err := store.CreateUser(ctx, &domain.User{Email: email}, password)
	if errors.Is(err, domain.ErrUserAlreadyExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	slog.Info("Demo user created", "email", email)
	return nil
}

// setupErrorHandling logs unexpected errors with a stack trace before echo
// writes the response. HTTP errors raised on purpose are passed through.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
