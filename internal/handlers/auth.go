package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
	hxhttp "maragu.dev/gomponents-htmx/http"

	"github.com/nfrund/painel/internal/auth"
	"github.com/nfrund/painel/internal/loginform"
	"github.com/nfrund/painel/internal/metrics"
	"github.com/nfrund/painel/internal/middleware"
	"github.com/nfrund/painel/internal/rendering"
	"github.com/nfrund/painel/internal/view"
	authdto "github.com/nfrund/painel/internal/view/dto/auth"
	"github.com/nfrund/painel/web/src/templates/layouts"
	"github.com/nfrund/painel/web/src/templates/pages"
	"github.com/nfrund/painel/web/src/templates/partials"
)

// AuthHandler serves the login page, the registration placeholder and logout.
type AuthHandler struct {
	auth     SignInService
	sessions SessionStore
	renderer rendering.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(a SignInService, sessions SessionStore, r rendering.Renderer) *AuthHandler {
	return &AuthHandler{auth: a, sessions: sessions, renderer: r}
}

// LoginGet renders an empty login form. Visitors who already have a session
// are redirected to the dashboard instead.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Discarding unreadable session", "error", err)
	}
	if sess != nil {
		return c.Redirect(http.StatusTemporaryRedirect, loginform.DashboardPath)
	}

	data := authdto.LoginData{
		State:     loginform.FormState{FieldErrors: loginform.FieldErrors{}},
		CSRFToken: csrfToken(c),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Login", view.GetFlashData(c), pages.Login(data)))
}

// LoginPost submits the login form.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var values loginform.Values
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	var navigated string
	ctrl := loginform.New(
		&sessionAuthenticator{c: c, auth: h.auth, sessions: h.sessions},
		loginform.RouterFunc(func(path string) { navigated = path }),
		view.NewToaster(c),
	)
	ctrl.Fill(values)

	res, err := ctrl.Submit(c.Request().Context())
	if errors.Is(err, loginform.ErrSubmitInProgress) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}

	switch {
	case res.Invalid:
		metrics.RecordLogin(metrics.OutcomeInvalid)
	case res.AuthErr != nil:
		metrics.RecordLogin(metrics.OutcomeFailed)
		if res.AuthErr.Err != nil {
			middleware.FromContext(c.Request().Context()).Error("Sign-in could not be completed", "error", res.AuthErr.Err)
		}
	case navigated != "":
		metrics.RecordLogin(metrics.OutcomeSucceeded)
	default:
		metrics.RecordLogin(metrics.OutcomeNone)
	}

	if navigated != "" {
		return navigate(c, navigated)
	}

	state := ctrl.State()
	state.Password = ""
	data := authdto.LoginData{State: state, CSRFToken: csrfToken(c)}

	status := http.StatusOK
	if res.Invalid {
		status = http.StatusUnprocessableEntity
	}

	flashes := view.GetFlashData(c)
	if hxhttp.IsRequest(c.Request().Header) {
		return h.renderer.RenderPage(c, status, cmp.Group{
			pages.LoginForm(data),
			partials.ToastsOOB(flashes.Toasts),
		})
	}
	return h.renderer.RenderPage(c, status, layouts.Base("Login", flashes, pages.Login(data)))
}

// RegisterGet renders the registration placeholder. htmx requests get the
// page body alone.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	if hxhttp.IsRequest(c.Request().Header) {
		return h.renderer.RenderPage(c, http.StatusOK, pages.Register())
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Criar conta", view.GetFlashData(c), view.TemplNode(pages.Register())))
}

// Logout ends the session and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Destroy(c); err != nil {
		middleware.FromContext(c.Request().Context()).Error("Failed to destroy session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}
	view.SetFlashSuccess(c, "Você saiu da sua conta.")
	return navigate(c, loginform.LoginPath)
}

// navigate redirects the browser, using HX-Redirect for htmx requests since
// htmx follows 3xx responses transparently and would swap the target page
// into the form.
func navigate(c echo.Context, path string) error {
	if hxhttp.IsRequest(c.Request().Header) {
		hxhttp.SetRedirect(c.Response().Header(), path)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

// sessionAuthenticator starts a session for successful sign-ins before the
// login controller sees the response.
type sessionAuthenticator struct {
	c        echo.Context
	auth     SignInService
	sessions SessionStore
}

func (a *sessionAuthenticator) SignIn(ctx context.Context, provider string, opts auth.SignInOptions) (auth.Response, error) {
	resp, err := a.auth.SignIn(ctx, provider, opts)
	if err != nil || resp.User == nil {
		return resp, err
	}
	if _, err := a.sessions.Create(a.c, resp.User); err != nil {
		return auth.Response{}, fmt.Errorf("start session: %w", err)
	}
	metrics.SessionsCreatedTotal.Inc()
	return resp, nil
}
