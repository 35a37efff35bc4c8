package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/painel/internal/view/dto/auth"
)

// Dashboard renders the landing page of a signed-in visitor.
func Dashboard(data auth.DashboardData) cmp.Node {
	return g.Main(
		g.Class("page"),
		g.Header(
			g.Class("row row--between"),
			g.H1(cmp.Textf("Olá, %s", data.Name)),
			g.Form(
				g.Method("post"),
				g.Action("/logout"),
				g.Input(g.Type("hidden"), g.Name("_csrf"), g.Value(data.CSRFToken)),
				g.Button(g.Type("submit"), g.Class("btn"), cmp.Text("Sair")),
			),
		),
		g.P(g.Class("muted"), cmp.Textf("Conectado como %s", data.Email)),
	)
}
