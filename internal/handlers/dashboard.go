package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/middleware"
	"github.com/nfrund/painel/internal/rendering"
	"github.com/nfrund/painel/internal/view"
	authdto "github.com/nfrund/painel/internal/view/dto/auth"
	"github.com/nfrund/painel/web/src/templates/layouts"
	"github.com/nfrund/painel/web/src/templates/pages"
)

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	renderer rendering.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(r rendering.Renderer) *DashboardHandler {
	return &DashboardHandler{renderer: r}
}

// DashboardGet shows the user's dashboard page.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	// RequireSession has already run and placed the session in the context.
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	data := authdto.DashboardData{
		Name:      sess.Name,
		Email:     sess.Email,
		CSRFToken: csrfToken(c),
	}
	return h.renderer.RenderPage(c, http.StatusOK, layouts.Base("Dashboard", view.GetFlashData(c), pages.Dashboard(data)))
}
