package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nfrund/painel/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type memoryUser struct {
	user domain.User
	hash []byte
}

// MemoryUserStore is an in-process domain.CredentialsStore with bcrypt
// password hashes. Its contents do not survive a restart.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]memoryUser
	cost  int
}

// NewMemoryUserStore creates an empty store. A cost of 0 selects
// bcrypt.DefaultCost.
func NewMemoryUserStore(cost int) *MemoryUserStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &MemoryUserStore{users: make(map[string]memoryUser), cost: cost}
}

// VerifyCredentials implements domain.CredentialsStore.
func (s *MemoryUserStore) VerifyCredentials(_ context.Context, email, password string) (*domain.User, error) {
	s.mu.RLock()
	u, ok := s.users[normalizeEmail(email)]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword(u.hash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}

	user := u.user
	return &user, nil
}

// CreateUser implements domain.CredentialsStore.
func (s *MemoryUserStore) CreateUser(_ context.Context, user *domain.User, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[email]; exists {
		return domain.ErrUserAlreadyExists
	}

	user.ID = "user:" + uuid.NewString()
	user.Email = email
	s.users[email] = memoryUser{user: *user, hash: hash}
	return nil
}
