package database

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nfrund/painel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore(bcrypt.MinCost)

	name := "Ana"
	user := &domain.User{Email: "  Ana@Example.com ", Name: &name}
	require.NoError(t, store.CreateUser(ctx, user, "s3cret"))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "ana@example.com", user.Email)

	t.Run("verifies correct credentials", func(t *testing.T) {
		got, err := store.VerifyCredentials(ctx, "ANA@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "Ana", got.DisplayName())
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, err := store.VerifyCredentials(ctx, "ana@example.com", "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, err := store.VerifyCredentials(ctx, "bob@example.com", "s3cret")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		err := store.CreateUser(ctx, &domain.User{Email: "ana@example.com"}, "other")
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})

	t.Run("returned users are copies", func(t *testing.T) {
		got, err := store.VerifyCredentials(ctx, "ana@example.com", "s3cret")
		require.NoError(t, err)
		got.Email = "changed@example.com"

		again, err := store.VerifyCredentials(ctx, "ana@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", again.Email)
	})
}

func TestMemoryUserStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryUserStore(bcrypt.MinCost)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.CreateUser(ctx, &domain.User{Email: "race@example.com"}, "pw")
		}()
	}
	wg.Wait()
	close(errs)

	var created int
	for err := range errs {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
		}
	}
	assert.Equal(t, 1, created)
}

func TestRedactDBURL(t *testing.T) {
	assert.Equal(t, "ws://root:xxxxx@localhost:8000/rpc", redactDBURL("ws://root:secret@localhost:8000/rpc"))
	assert.Equal(t, "invalid-url", redactDBURL("://bad"))
}

func TestHasLimitClause(t *testing.T) {
	assert.True(t, hasLimitClause("SELECT * FROM user LIMIT 1"))
	assert.True(t, hasLimitClause("select * from user limit 5"))
	assert.False(t, hasLimitClause("SELECT * FROM user WHERE email = $email"))
}

func TestEmailAvailable(t *testing.T) {
	assert.ErrorIs(t, emailAvailable(nil), domain.ErrUserAlreadyExists)
	assert.NoError(t, emailAvailable(domain.ErrNotFound))

	dbErr := errors.New("surreal: connection refused")
	err := emailAvailable(dbErr)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrUserAlreadyExists)
	assert.Contains(t, err.Error(), "check existing user")
}
