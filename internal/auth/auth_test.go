package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/nfrund/painel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockStore) CreateUser(ctx context.Context, user *domain.User, password string) error {
	return m.Called(ctx, user, password).Error(0)
}

func newTestService(t *testing.T, store domain.CredentialsStore) *Service {
	t.Helper()
	svc, err := NewService("http://localhost:8080", NewCredentialsProvider(store))
	require.NoError(t, err)
	return svc
}

func validOptions() SignInOptions {
	return SignInOptions{
		CallbackURL: "/dashboard",
		Email:       "ana@example.com",
		Password:    "secret",
	}
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with valid credentials", func(t *testing.T) {
		store := new(mockStore)
		user := &domain.User{ID: "user:1", Email: "ana@example.com"}
		store.On("VerifyCredentials", ctx, "ana@example.com", "secret").Return(user, nil).Once()

		resp, err := newTestService(t, store).SignIn(ctx, ProviderCredentials, validOptions())
		require.NoError(t, err)
		assert.True(t, resp.OK)
		assert.Empty(t, resp.Error)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "/dashboard", resp.URL)
		assert.Same(t, user, resp.User)
		store.AssertExpectations(t)
	})

	t.Run("reports rejected credentials in the response", func(t *testing.T) {
		store := new(mockStore)
		store.On("VerifyCredentials", ctx, "ana@example.com", "secret").Return(nil, domain.ErrInvalidCredentials).Once()

		resp, err := newTestService(t, store).SignIn(ctx, ProviderCredentials, validOptions())
		require.NoError(t, err)
		assert.False(t, resp.OK)
		assert.Equal(t, ErrorCredentialsSignin, resp.Error)
		assert.Equal(t, http.StatusUnauthorized, resp.Status)
		assert.Empty(t, resp.URL)
		assert.Nil(t, resp.User)
	})

	t.Run("returns store failures as errors", func(t *testing.T) {
		store := new(mockStore)
		boom := errors.New("connection refused")
		store.On("VerifyCredentials", ctx, "ana@example.com", "secret").Return(nil, boom).Once()

		_, err := newTestService(t, store).SignIn(ctx, ProviderCredentials, validOptions())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejects empty credentials without calling the store", func(t *testing.T) {
		store := new(mockStore)
		opts := validOptions()
		opts.Password = ""

		resp, err := newTestService(t, store).SignIn(ctx, ProviderCredentials, opts)
		require.NoError(t, err)
		assert.Equal(t, ErrorCredentialsSignin, resp.Error)
		store.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown provider is a configuration error", func(t *testing.T) {
		store := new(mockStore)

		resp, err := newTestService(t, store).SignIn(ctx, "github", validOptions())
		require.NoError(t, err)
		assert.False(t, resp.OK)
		assert.Equal(t, ErrorConfiguration, resp.Error)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("redirect mode is not supported", func(t *testing.T) {
		store := new(mockStore)
		opts := validOptions()
		opts.Redirect = true

		resp, err := newTestService(t, store).SignIn(ctx, ProviderCredentials, opts)
		require.NoError(t, err)
		assert.Equal(t, ErrorConfiguration, resp.Error)
		store.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Provider(t *testing.T) {
	svc := newTestService(t, new(mockStore))

	p, err := svc.Provider(ProviderCredentials)
	require.NoError(t, err)
	assert.Equal(t, ProviderCredentials, p.ID())

	_, err = svc.Provider("github")
	assert.ErrorIs(t, err, ErrUnknownProvider)
	assert.ErrorContains(t, err, `"github"`)
}

func TestNewService_DuplicateProvider(t *testing.T) {
	store := new(mockStore)
	_, err := NewService("http://localhost:8080", NewCredentialsProvider(store), NewCredentialsProvider(store))
	assert.Error(t, err)
}

func TestCallbackURL(t *testing.T) {
	svc := newTestService(t, new(mockStore))

	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/dashboard", "/dashboard"},
		{"/dashboard?tab=1", "/dashboard?tab=1"},
		{"//evil.example.com", "/"},
		{`/\evil.example.com`, "/"},
		{"https://evil.example.com/dashboard", "/"},
		{"http://localhost:8080/dashboard", "/dashboard"},
		{"http://localhost:8080", "/"},
		{"javascript:alert(1)", "/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.callbackURL(tt.in))
		})
	}
}
