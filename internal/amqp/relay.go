package amqp

import (
	"context"
	"log/slog"
	"sync"

	"financetracker/internal/core"
	"financetracker/internal/notify"
)

// Relay forwards broadcaster notifications to the message broker.
// Subscribers receive the full notification list on every change, so the
// relay tracks the highest ID it has forwarded and publishes only newer ones.
type Relay struct {
	client      *Client
	mu          sync.Mutex
	lastSeen    int
	unsubscribe func()
}

// NewRelay attaches a relay to the broadcaster. A nil client yields a
// no-op relay so callers do not need to branch when AMQP is disabled.
func NewRelay(ctx context.Context, client *Client, broadcaster *notify.Broadcaster) *Relay {
	r := &Relay{client: client}
	if client == nil {
		return r
	}
	r.unsubscribe = broadcaster.Subscribe(func(notifications []core.Notification) {
		r.forward(ctx, notifications)
	})
	return r
}

func (r *Relay) forward(ctx context.Context, notifications []core.Notification) {
	r.mu.Lock()
	var fresh []core.Notification
	maxID := r.lastSeen
	for _, n := range notifications {
		if n.ID > r.lastSeen {
			fresh = append(fresh, n)
		}
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	r.lastSeen = maxID
	r.mu.Unlock()

	// Newest-first lists are forwarded oldest-first to preserve event order.
	for i := len(fresh) - 1; i >= 0; i-- {
		event := NewNotificationEvent(fresh[i])
		if err := r.client.PublishNotification(ctx, event); err != nil {
			slog.ErrorContext(ctx, "Failed to relay notification",
				"error", err,
				"notification_id", event.NotificationID)
		}
	}
}

// Stop detaches the relay from the broadcaster.
func (r *Relay) Stop() {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
}
