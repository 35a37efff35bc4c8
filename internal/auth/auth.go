// Package auth signs visitors in through pluggable providers and reports the
// outcome as a Response, never by redirecting on its own.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nfrund/painel/internal/domain"
)

// ProviderCredentials is the id of the email/password provider.
const ProviderCredentials = "credentials"

// Error codes carried in Response.Error.
const (
	ErrorCredentialsSignin = "CredentialsSignin"
	ErrorConfiguration     = "Configuration"
)

// ErrUnknownProvider is returned by Service.Provider for ids that were never
// registered. SignIn reports it as an ErrorConfiguration response.
var ErrUnknownProvider = errors.New("unknown auth provider")

// SignInOptions are the parameters of a sign-in attempt.
type SignInOptions struct {
	// Redirect asks the authenticator to navigate by itself. Only false is
	// supported; the caller decides what to do with Response.URL.
	Redirect    bool
	CallbackURL string
	Email       string
	Password    string
}

// Response is the outcome of SignIn. Error and URL are independent: callers
// check both.
type Response struct {
	Error  string
	Status int
	OK     bool
	URL    string

	// User is the authenticated principal on success. It is meant for the
	// session layer, not for views.
	User *domain.User
}

// Provider authorizes a sign-in attempt.
type Provider interface {
	ID() string
	// Authorize returns the user for valid input, domain.ErrInvalidCredentials
	// for rejected input, or any other error for infrastructure failures.
	Authorize(ctx context.Context, opts SignInOptions) (*domain.User, error)
}

// Service dispatches sign-in attempts to registered providers.
type Service struct {
	providers map[string]Provider
	base      *url.URL
}

// NewService creates a Service. baseURL is the public origin of the
// application and is used to accept absolute same-origin callback URLs.
func NewService(baseURL string, providers ...Provider) (*Service, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	s := &Service{providers: make(map[string]Provider, len(providers)), base: base}
	for _, p := range providers {
		if _, dup := s.providers[p.ID()]; dup {
			return nil, fmt.Errorf("auth provider %q registered twice", p.ID())
		}
		s.providers[p.ID()] = p
	}
	return s, nil
}

// SignIn authenticates through the named provider. Rejected credentials and
// misconfiguration are reported in the Response; a non-nil error means the
// attempt could not be evaluated at all.
func (s *Service) SignIn(ctx context.Context, provider string, opts SignInOptions) (Response, error) {
	p, err := s.Provider(provider)
	if err != nil {
		slog.DebugContext(ctx, "Sign-in rejected", "error", err)
		return Response{Error: ErrorConfiguration, Status: http.StatusBadRequest}, nil
	}
	if opts.Redirect {
		return Response{Error: ErrorConfiguration, Status: http.StatusBadRequest}, nil
	}

	user, err := p.Authorize(ctx, opts)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return Response{Error: ErrorCredentialsSignin, Status: http.StatusUnauthorized}, nil
	}
	if err != nil {
		return Response{}, fmt.Errorf("%s provider: %w", provider, err)
	}

	return Response{
		Status: http.StatusOK,
		OK:     true,
		URL:    s.callbackURL(opts.CallbackURL),
		User:   user,
	}, nil
}

// Provider returns the provider registered under id.
func (s *Service) Provider(id string) (Provider, error) {
	p, ok := s.providers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, id)
	}
	return p, nil
}

// callbackURL keeps same-origin targets and replaces everything else with "/".
func (s *Service) callbackURL(raw string) string {
	if raw == "" {
		return "/"
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, `/\`) {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != s.base.Scheme || u.Host != s.base.Host {
		return "/"
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}
