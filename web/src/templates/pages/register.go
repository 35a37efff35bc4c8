package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/nfrund/painel/internal/loginform"
)

// Register renders the registration placeholder linked from the login form.
func Register() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="auth-shell"><div class="auth-card stack">`+
			`<h1>Criar conta</h1>`+
			`<p class="muted">O cadastro ainda não está disponível.</p>`+
			`<p class="muted center">Já tem uma conta? <a href="`+templ.EscapeString(loginform.LoginPath)+`" class="btn-link">Entrar</a></p>`+
			`</div></main>`)
		return err
	})
}
