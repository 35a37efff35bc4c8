// Package notify describes transient, user-facing notifications ("toasts")
// independently of how a page ends up displaying them.
package notify

import "time"

// Kind is the severity of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Position is the screen corner a notification is anchored to.
type Position string

const (
	TopRight    Position = "top-right"
	TopLeft     Position = "top-left"
	BottomRight Position = "bottom-right"
	BottomLeft  Position = "bottom-left"
)

// DefaultDuration is used when a Notification leaves Duration unset.
const DefaultDuration = 5 * time.Second

// Notification is a single dismissible message.
type Notification struct {
	Title       string
	Description string
	Kind        Kind
	Duration    time.Duration
	Position    Position
}

// Notifier displays notifications to the current visitor.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }
