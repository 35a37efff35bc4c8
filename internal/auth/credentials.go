package auth

import (
	"context"
	"strings"

	"github.com/nfrund/painel/internal/domain"
)

// CredentialsProvider authorizes email/password pairs against a store.
type CredentialsProvider struct {
	store domain.CredentialsStore
}

// NewCredentialsProvider creates a CredentialsProvider.
func NewCredentialsProvider(store domain.CredentialsStore) *CredentialsProvider {
	return &CredentialsProvider{store: store}
}

// ID implements Provider.
func (p *CredentialsProvider) ID() string { return ProviderCredentials }

// Authorize implements Provider.
func (p *CredentialsProvider) Authorize(ctx context.Context, opts SignInOptions) (*domain.User, error) {
	email := strings.TrimSpace(opts.Email)
	if email == "" || opts.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return p.store.VerifyCredentials(ctx, email, opts.Password)
}
