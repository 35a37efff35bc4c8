package domain

import "context"

// User represents the authenticated principal returned by a credentials store.
// The password hash never leaves the store.
type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

// DisplayName returns the user's name, or the email when no name is set.
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}

// CredentialsStore defines the contract for verifying email/password pairs.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type CredentialsStore interface {
	// VerifyCredentials returns the matching user, or ErrInvalidCredentials
	// when the email is unknown or the password does not match.
	VerifyCredentials(ctx context.Context, email, password string) (*User, error)

	// CreateUser stores a new user with the given password. It returns
	// ErrUserAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user *User, password string) error
}
