package domain

import "time"

// Session is the server-recognized authenticated state of a visitor.
type Session struct {
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
