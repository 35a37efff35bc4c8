// Package session keeps the authenticated state of a visitor in a signed
// gorilla/sessions cookie.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/domain"
)

// Name is the cookie session holding authentication state.
const Name = "painel-session"

const (
	keyUserID  = "user_id"
	keyEmail   = "email"
	keyName    = "name"
	keyExpires = "expires"
)

// Service reads and writes the authentication session.
type Service struct {
	maxAge time.Duration
	secure bool
	now    func() time.Time
}

// NewService creates a Service whose sessions live for maxAge.
func NewService(maxAge time.Duration, secure bool) *Service {
	return &Service{maxAge: maxAge, secure: secure, now: time.Now}
}

// WithClock replaces the time source used for expiry checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// NewCookieStore builds the store installed by the echo-contrib session
// middleware. It is shared by the authentication and flash sessions.
func NewCookieStore(secret string, maxAge time.Duration, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Get returns the visitor's session, or nil when there is none or it expired.
func (s *Service) Get(c echo.Context) (*domain.Session, error) {
	sess, err := session.Get(Name, c)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	email, _ := sess.Values[keyEmail].(string)
	if email == "" {
		return nil, nil
	}

	out := &domain.Session{Email: email}
	out.UserID, _ = sess.Values[keyUserID].(string)
	out.Name, _ = sess.Values[keyName].(string)
	if exp, ok := sess.Values[keyExpires].(int64); ok {
		out.ExpiresAt = time.Unix(exp, 0)
	}
	if out.Expired(s.now()) {
		return nil, nil
	}
	return out, nil
}

// Create starts a session for user and writes the cookie.
func (s *Service) Create(c echo.Context, user *domain.User) (*domain.Session, error) {
	// A cookie that fails to decode still yields a fresh session to overwrite.
	sess, err := session.Get(Name, c)
	if sess == nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	expires := s.now().Add(s.maxAge)
	sess.Values[keyUserID] = user.ID
	sess.Values[keyEmail] = user.Email
	sess.Values[keyName] = user.DisplayName()
	sess.Values[keyExpires] = expires.Unix()
	sess.Options = s.options(int(s.maxAge.Seconds()))

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &domain.Session{
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.DisplayName(),
		ExpiresAt: time.Unix(expires.Unix(), 0),
	}, nil
}

// Destroy removes the session cookie.
func (s *Service) Destroy(c echo.Context) error {
	sess, err := session.Get(Name, c)
	if sess == nil {
		return fmt.Errorf("load session: %w", err)
	}
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options = s.options(-1)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Service) options(maxAge int) *sessions.Options {
	return &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
