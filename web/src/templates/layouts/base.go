package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/painel/internal/view"
	"github.com/nfrund/painel/web/src/templates/partials"
)

// HTMXScript is the htmx build loaded by every page.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// htmxConfig lets htmx swap 422 responses, which carry re-rendered forms.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// Base wraps page content in the HTML document shell, rendering pending
// flash banners and toasts.
func Base(title string, flashes view.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("pt-BR"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.Meta(g.Name("htmx-config"), g.Content(htmxConfig)),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
				g.Script(g.Src(HTMXScript), g.Defer()),
				g.Script(g.Src("/static/toast.js"), g.Defer()),
			),
			g.Body(
				partials.FlashBanners(flashes.Success, flashes.Error),
				content,
				partials.ToastRegions(flashes.Toasts),
			),
		),
	)
}
