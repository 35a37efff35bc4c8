package pages

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/painel/internal/loginform"
	"github.com/nfrund/painel/internal/view/dto/auth"
)

// LoginFormID is the element id of the login form, the target of htmx swaps.
const LoginFormID = "login-form"

const submitID = "login-submit"

// Login renders the login page content.
func Login(data auth.LoginData) cmp.Node {
	return g.Main(
		g.Class("auth-shell"),
		g.Div(
			g.Class("auth-card"),
			LoginForm(data),
		),
	)
}

// LoginForm renders the form alone. Submitting with htmx swaps the form in
// place, disabling the submit button and showing its spinner while the
// request is in flight.
func LoginForm(data auth.LoginData) cmp.Node {
	s := data.State
	return g.Form(
		g.ID(LoginFormID),
		g.Method("post"),
		g.Action(loginform.LoginPath),
		cmp.Attr("novalidate"),
		hx.Post(loginform.LoginPath),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		hx.Indicator("#"+submitID),
		cmp.Attr("hx-disabled-elt", "#"+submitID),
		g.Input(g.Type("hidden"), g.Name("_csrf"), g.Value(data.CSRFToken)),

		g.Div(
			g.Class("stack"),
			formControl(loginform.FieldEmail, "Endereço de email", "text", "email", s.Email, s.FieldErrors),
			formControl(loginform.FieldPassword, "Senha", "password", "current-password", "", s.FieldErrors),
		),

		g.Div(
			g.Class("row row--between"),
			g.Label(
				g.Class("checkbox"),
				g.Input(g.Type("checkbox"), g.Name("remember"), g.Value("true"), cmp.If(s.StaySignedIn, g.Checked())),
				g.Span(cmp.Text("Permanecer conectado")),
			),
			g.Button(g.Type("button"), g.Class("btn-link btn-link--sm"), cmp.Text("Esqueceu sua senha?")),
		),

		g.Div(
			g.Class("stack"),
			g.Button(
				g.Type("submit"),
				g.ID(submitID),
				g.Class("btn btn--primary"),
				cmp.If(s.IsSubmitting, g.Disabled()),
				cmp.If(s.IsSubmitting, g.Aria("busy", "true")),
				g.Span(g.Class("spinner htmx-indicator"), g.Aria("hidden", "true")),
				g.Span(g.Class("btn__label"), cmp.Text("Entrar")),
			),
			g.P(
				g.Class("muted center"),
				cmp.Text("Você ainda não tem uma conta? "),
				g.A(g.Href(loginform.RegisterPath), g.Class("btn-link"), cmp.Text("Registre-se")),
			),
		),
	)
}

// formControl renders a labelled input with its inline validation message.
// The password input is never refilled.
func formControl(field loginform.Field, label, inputType, autocomplete, value string, errs loginform.FieldErrors) cmp.Node {
	id := string(field)
	invalid := errs.Has(field)
	class := "form-control"
	if invalid {
		class += " form-control--invalid"
	}
	return g.Div(
		g.Class(class),
		g.Label(g.For(id), cmp.Text(label)),
		g.Input(
			g.ID(id),
			g.Name(id),
			g.Type(inputType),
			g.AutoComplete(autocomplete),
			cmp.If(value != "", g.Value(value)),
			cmp.If(invalid, g.Aria("invalid", "true")),
			cmp.If(invalid, g.Aria("describedby", id+"-error")),
		),
		cmp.If(invalid, g.P(g.ID(id+"-error"), g.Class("form-error"), cmp.Text(errs.Message(field)))),
	)
}
