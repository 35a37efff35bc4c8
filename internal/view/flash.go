package view

import (
	"encoding/gob"
	"log/slog"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/notify"
)

const (
	flashSessionName = "flash-session"
	flashKeySuccess  = "success"
	flashKeyError    = "error"
	flashKeyToast    = "toast"
)

func init() {
	gob.Register(notify.Notification{})
}

// FlashData holds the one-shot messages consumed by a page render.
type FlashData struct {
	Success []string
	Error   []string
	Toasts  []notify.Notification
}

// setFlash sets a flash message in the session.
func setFlash(c echo.Context, key string, value any) {
	sess, err := session.Get(flashSessionName, c)
	if sess == nil {
		slog.ErrorContext(c.Request().Context(), "Failed to load flash session", "error", err)
		return
	}
	sess.AddFlash(value, key)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to save flash session", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	setFlash(c, flashKeySuccess, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	setFlash(c, flashKeyError, message)
}

// AddToast queues a toast for the next page render.
func AddToast(c echo.Context, n notify.Notification) {
	if n.Duration <= 0 {
		n.Duration = notify.DefaultDuration
	}
	if n.Position == "" {
		n.Position = notify.TopRight
	}
	setFlash(c, flashKeyToast, n)
}

// GetFlashData retrieves and clears all flash messages from the session.
func GetFlashData(c echo.Context) FlashData {
	var data FlashData

	sess, _ := session.Get(flashSessionName, c)
	if sess == nil {
		return data
	}

	// Flashes() reads and removes the values, so the session must be saved
	// afterwards for the removal to stick.
	success := sess.Flashes(flashKeySuccess)
	errs := sess.Flashes(flashKeyError)
	toasts := sess.Flashes(flashKeyToast)
	if len(success)+len(errs)+len(toasts) == 0 {
		return data
	}

	data.Success = flashStrings(success)
	data.Error = flashStrings(errs)
	for _, v := range toasts {
		if n, ok := v.(notify.Notification); ok {
			data.Toasts = append(data.Toasts, n)
		}
	}

	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to save flash session", "error", err)
	}
	return data
}

func flashStrings(values []any) []string {
	var out []string
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Toaster is a notify.Notifier that queues toasts in the flash session of
// one request.
type Toaster struct {
	c echo.Context
}

// NewToaster creates a Toaster bound to c.
func NewToaster(c echo.Context) *Toaster {
	return &Toaster{c: c}
}

// Notify implements notify.Notifier.
func (t *Toaster) Notify(n notify.Notification) {
	AddToast(t.c, n)
}
