package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/painel/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// userRow is the projection of a user record the stores read back. The
// password hash is never selected.
type userRow struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

func (r *userRow) toDomain() *domain.User {
	return &domain.User{ID: r.ID, Email: r.Email, Name: r.Name}
}

const (
	verifyCredentialsQuery = `SELECT <string> id AS id, email, name FROM user
		WHERE email = $email AND crypto::argon2::compare(password, $password)`

	findUserQuery = `SELECT <string> id AS id, email, name FROM user WHERE email = $email`

	createUserQuery = `CREATE user SET
		email = $email,
		name = $name,
		password = crypto::argon2::generate($password)
		RETURN <string> id AS id, email, name`
)

// SurrealUserStore implements domain.CredentialsStore on a SurrealDB "user"
// table. Password hashing and comparison run inside the database.
type SurrealUserStore struct {
	db *surrealdb.DB
}

// NewSurrealUserStore creates a SurrealUserStore.
func NewSurrealUserStore(db *surrealdb.DB) *SurrealUserStore {
	return &SurrealUserStore{db: db}
}

// VerifyCredentials implements domain.CredentialsStore.
func (s *SurrealUserStore) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	row, err := QueryOne[userRow](ctx, s.db, verifyCredentialsQuery, map[string]any{
		"email":    normalizeEmail(email),
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("verify credentials: %w", err)
	}
	if row == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return row.toDomain(), nil
}

// FindUserByEmail returns the user with the given email, or domain.ErrNotFound.
func (s *SurrealUserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := QueryOne[userRow](ctx, s.db, findUserQuery, map[string]any{"email": normalizeEmail(email)})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if row == nil {
		return nil, domain.ErrNotFound
	}
	return row.toDomain(), nil
}

// CreateUser implements domain.CredentialsStore.
func (s *SurrealUserStore) CreateUser(ctx context.Context, user *domain.User, password string) error {
	email := normalizeEmail(user.Email)
	_, lookupErr := s.FindUserByEmail(ctx, email)
	if err := emailAvailable(lookupErr); err != nil {
		return err
	}

	row, err := QueryOne[userRow](ctx, s.db, createUserQuery, map[string]any{
		"email":    email,
		"name":     user.Name,
		"password": password,
	})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "already contains") {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	if row != nil {
		user.ID = row.ID
	}
	user.Email = email
	return nil
}

// emailAvailable interprets the result of a lookup done before CreateUser.
func emailAvailable(lookupErr error) error {
	switch {
	case lookupErr == nil:
		return domain.ErrUserAlreadyExists
	case errors.Is(lookupErr, domain.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("check existing user: %w", lookupErr)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
