// Package loginform holds the state and submit protocol of the login view,
// independent of any HTTP or HTML concerns.
package loginform

import (
	"context"
	"maps"
	"sync"

	"github.com/nfrund/painel/internal/auth"
	"github.com/nfrund/painel/internal/notify"
)

// Authenticator performs the sign-in call.
type Authenticator interface {
	SignIn(ctx context.Context, provider string, opts auth.SignInOptions) (auth.Response, error)
}

// Router navigates the visitor.
type Router interface {
	Push(path string)
}

// RouterFunc adapts a function to the Router interface.
type RouterFunc func(path string)

// Push calls f(path).
func (f RouterFunc) Push(path string) { f(path) }

// FormState is a snapshot of the login form.
type FormState struct {
	Values
	IsSubmitting bool
	FieldErrors  FieldErrors
}

// Result describes what a Submit call did.
type Result struct {
	// Invalid is set when validation blocked the authenticate call.
	Invalid bool
	// AuthErr is the authentication failure that was notified, if any.
	AuthErr *AuthenticationError
	// Navigated is the path pushed to the router, or "".
	Navigated string
}

// Controller owns one login form. State transitions are Idle -> Submitting ->
// Idle; field values stay editable while a submit is pending.
type Controller struct {
	auth     Authenticator
	router   Router
	notifier notify.Notifier

	mu    sync.Mutex
	state FormState
}

// New creates a Controller with an empty form.
func New(a Authenticator, r Router, n notify.Notifier) *Controller {
	return &Controller{
		auth:     a,
		router:   r,
		notifier: n,
		state:    FormState{FieldErrors: FieldErrors{}},
	}
}

// State returns a copy of the current form state.
func (c *Controller) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.state
	s.FieldErrors = maps.Clone(c.state.FieldErrors)
	return s
}

// SetEmail updates the email input.
func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	c.state.Email = v
	c.mu.Unlock()
}

// SetPassword updates the password input.
func (c *Controller) SetPassword(v string) {
	c.mu.Lock()
	c.state.Password = v
	c.mu.Unlock()
}

// SetStaySignedIn updates the "stay signed in" toggle. Submit ignores it.
func (c *Controller) SetStaySignedIn(v bool) {
	c.mu.Lock()
	c.state.StaySignedIn = v
	c.mu.Unlock()
}

// Fill replaces all input values at once.
func (c *Controller) Fill(v Values) {
	c.mu.Lock()
	c.state.Values = v
	c.mu.Unlock()
}

// Submit validates the form and, when valid, signs the visitor in.
//
// An error notification is raised when the authenticator reports an error or
// the call itself fails; the router is pushed to the dashboard when the
// response carries a URL. Both checks run, in that order.
func (c *Controller) Submit(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.state.IsSubmitting {
		c.mu.Unlock()
		return Result{}, ErrSubmitInProgress
	}

	errs := Validate(c.state.Values)
	c.state.FieldErrors = errs
	if len(errs) > 0 {
		c.mu.Unlock()
		return Result{Invalid: true}, nil
	}

	values := c.state.Values
	c.state.IsSubmitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.state.IsSubmitting = false
		c.mu.Unlock()
	}()

	resp, err := c.auth.SignIn(ctx, Provider, auth.SignInOptions{
		Redirect:    false,
		CallbackURL: DashboardPath,
		Email:       values.Email,
		Password:    values.Password,
	})

	var res Result
	if err != nil || resp.Error != "" {
		res.AuthErr = &AuthenticationError{Reason: resp.Error, Err: err}
		c.notifier.Notify(FailureNotification())
	}
	if err == nil && resp.URL != "" {
		res.Navigated = DashboardPath
		c.router.Push(DashboardPath)
	}
	return res, nil
}
