package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/painel/internal/loginform"
	"github.com/nfrund/painel/internal/view/dto/auth"
)

func render(t *testing.T, data auth.LoginData) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, LoginForm(data).Render(&b))
	return b.String()
}

func TestLoginForm(t *testing.T) {
	t.Run("idle form posts to itself through htmx", func(t *testing.T) {
		html := render(t, auth.LoginData{CSRFToken: "tok"})

		assert.Contains(t, html, `hx-post="/"`)
		assert.Contains(t, html, `hx-swap="outerHTML"`)
		assert.Contains(t, html, `name="_csrf" value="tok"`)
		assert.NotContains(t, html, " disabled ")
		assert.NotContains(t, html, `aria-invalid`)
	})

	t.Run("submitting disables the button", func(t *testing.T) {
		html := render(t, auth.LoginData{State: loginform.FormState{IsSubmitting: true}})

		assert.Contains(t, html, " disabled ")
		assert.Contains(t, html, `aria-busy="true"`)
	})

	t.Run("field errors render inline", func(t *testing.T) {
		state := loginform.FormState{
			Values:      loginform.Values{Email: "ana", Password: "secret", StaySignedIn: true},
			FieldErrors: loginform.Validate(loginform.Values{Email: "ana"}),
		}
		html := render(t, auth.LoginData{State: state})

		assert.Contains(t, html, `aria-describedby="email-error"`)
		assert.Contains(t, html, "Endereço de email inválido.")
		assert.Contains(t, html, `class="form-control form-control--invalid"`)
		assert.Contains(t, html, `value="ana"`)
		assert.NotContains(t, html, `value="secret"`)
		assert.Contains(t, html, "checked")
	})
}
