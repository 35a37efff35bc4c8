package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	cmp "maragu.dev/gomponents"
)

// templNode wraps a templ.Component so it can sit inside a gomponents tree.
type templNode struct {
	component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the component renders with context.Background().
func (n templNode) Render(w io.Writer) error {
	return n.component.Render(context.Background(), w)
}

// TemplNode adapts a templ.Component into a gomponents.Node.
func TemplNode(component templ.Component) cmp.Node {
	return templNode{component: component}
}
