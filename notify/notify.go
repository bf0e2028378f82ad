// Package notify carries user-facing toast notifications. Every failure
// in the upload/execute flow produces exactly one notification; none are
// silently dropped by the emitting side.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for presentation.
type Kind string

const (
	KindInfo  Kind = "info"
	KindError Kind = "error"
)

// Notification is one user-facing toast.
type Notification struct {
	ID      string
	Kind    Kind
	Title   string
	Message string
	Time    time.Time
}

// New creates a Notification with a unique identifier and the current
// time.
func New(kind Kind, title, message string) Notification {
	return Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   title,
		Message: message,
		Time:    time.Now(),
	}
}

// Notifier presents notifications to the user. Implementations must not
// block the caller.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NoopNotifier discards all notifications.
type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, n Notification) {}

// MultiNotifier fans out notifications to several notifiers in order.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier creates a MultiNotifier forwarding to all non-nil
// notifiers.
func NewMultiNotifier(notifiers ...Notifier) *MultiNotifier {
	kept := make([]Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			kept = append(kept, n)
		}
	}
	return &MultiNotifier{notifiers: kept}
}

func (m *MultiNotifier) Notify(ctx context.Context, n Notification) {
	for _, notifier := range m.notifiers {
		notifier.Notify(ctx, n)
	}
}
