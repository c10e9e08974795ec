package notification

import (
	"context"
	"log/slog"
	"time"
)

// Notifier delivers a message to a recipient. Callers treat delivery as
// fire-and-forget: no authentication flow waits on it or fails with it.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// SendAsync dispatches a notification in the background with its own
// timeout, logging failures instead of returning them.
func SendAsync(n Notifier, recipient, subject, body string) {
	if n == nil || recipient == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := n.Send(ctx, recipient, subject, body); err != nil {
			slog.Error("notification delivery failed", "recipient", recipient, "subject", subject, "error", err)
		}
	}()
}

// NoopNotifier drops every message. Used when SMTP is not configured and in
// tests.
type NoopNotifier struct{}

func (NoopNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	return nil
}
