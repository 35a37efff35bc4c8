package partials

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/painel/internal/notify"
)

var positions = []notify.Position{notify.TopRight, notify.TopLeft, notify.BottomRight, notify.BottomLeft}

// RegionID is the element id of the toast container for pos.
func RegionID(pos notify.Position) string {
	return "toasts-" + string(pos)
}

// ToastRegions renders one container per screen corner, holding the toasts
// anchored there. Empty containers are still rendered so htmx responses can
// append to them.
func ToastRegions(toasts []notify.Notification) cmp.Node {
	nodes := make([]cmp.Node, 0, len(positions))
	for _, pos := range positions {
		nodes = append(nodes, g.Div(
			g.ID(RegionID(pos)),
			g.Class("toasts toasts--"+string(pos)),
			g.Aria("live", "polite"),
			cmp.Map(byPosition(toasts, pos), Toast),
		))
	}
	return cmp.Group(nodes)
}

// ToastsOOB renders toasts as htmx out-of-band swaps that append to the
// existing regions of the page.
func ToastsOOB(toasts []notify.Notification) cmp.Node {
	var nodes []cmp.Node
	for _, pos := range positions {
		items := byPosition(toasts, pos)
		if len(items) == 0 {
			continue
		}
		nodes = append(nodes, g.Div(
			g.ID(RegionID(pos)),
			cmp.Attr("hx-swap-oob", "beforeend"),
			cmp.Map(items, Toast),
		))
	}
	return cmp.Group(nodes)
}

// Toast renders a single dismissible notification. toast.js removes it after
// data-duration milliseconds.
func Toast(n notify.Notification) cmp.Node {
	role := "status"
	if n.Kind == notify.KindError {
		role = "alert"
	}
	duration := n.Duration
	if duration <= 0 {
		duration = notify.DefaultDuration
	}

	return g.Div(
		g.Class("toast toast--"+string(n.Kind)),
		g.Role(role),
		g.Data("duration", strconv.FormatInt(duration.Milliseconds(), 10)),
		g.Data("position", string(n.Position)),
		g.Div(
			g.Class("toast__body"),
			g.Strong(g.Class("toast__title"), cmp.Text(n.Title)),
			cmp.If(n.Description != "", g.P(g.Class("toast__description"), cmp.Text(n.Description))),
		),
		g.Button(
			g.Type("button"),
			g.Class("toast__close"),
			g.Aria("label", "Fechar"),
			cmp.Text("×"),
		),
	)
}

func byPosition(toasts []notify.Notification, pos notify.Position) []notify.Notification {
	var out []notify.Notification
	for _, t := range toasts {
		p := t.Position
		if p == "" {
			p = notify.TopRight
		}
		if p == pos {
			out = append(out, t)
		}
	}
	return out
}
