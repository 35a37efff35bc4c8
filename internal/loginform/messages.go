package loginform

import (
	"time"

	"github.com/nfrund/painel/internal/notify"
)

// Navigation targets and authenticator parameters used by the login view.
const (
	Provider      = "credentials"
	DashboardPath = "/dashboard"
	RegisterPath  = "/register"
	LoginPath     = "/"
)

// User-facing copy.
const (
	msgEmailRequired    = "Campo não preenchido."
	msgEmailInvalid     = "Endereço de email inválido."
	msgPasswordRequired = "Campo não preenchido"

	FailureTitle       = "Algo deu errado!"
	FailureDescription = "Verifique as informações e tente novamente."
)

// FailureDuration is how long the authentication failure toast stays visible.
const FailureDuration = 3500 * time.Millisecond

// FailureNotification is shown whenever the authenticator reports an error.
func FailureNotification() notify.Notification {
	return notify.Notification{
		Title:       FailureTitle,
		Description: FailureDescription,
		Kind:        notify.KindError,
		Duration:    FailureDuration,
		Position:    notify.TopRight,
	}
}
