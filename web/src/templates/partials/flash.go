package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// FlashBanners renders success and error flash messages.
func FlashBanners(success, errs []string) cmp.Node {
	if len(success) == 0 && len(errs) == 0 {
		return nil
	}
	return g.Div(
		g.Class("flashes"),
		cmp.Map(success, func(msg string) cmp.Node {
			return g.P(g.Class("flash flash--success"), g.Role("status"), cmp.Text(msg))
		}),
		cmp.Map(errs, func(msg string) cmp.Node {
			return g.P(g.Class("flash flash--error"), g.Role("alert"), cmp.Text(msg))
		}),
	)
}
