package auth

import "github.com/nfrund/painel/internal/loginform"

// LoginData is the view model of the login page.
type LoginData struct {
	State     loginform.FormState
	CSRFToken string
}

// DashboardData is the view model of the dashboard page.
type DashboardData struct {
	Name      string
	Email     string
	CSRFToken string
}
