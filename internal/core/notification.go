package core

import (
	"encoding/json"
	"time"
)

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

type NotificationType string

// Notification is an in-memory, auto-expiring message surfaced to observers.
// Notifications are never persisted; ids are a per-broadcaster monotonic
// counter, not uuids.
type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Icon      string           `json:"icon"`
	Timestamp time.Time        `json:"timestamp"`
	// Duration 0 keeps the notification until it is dismissed explicitly.
	// On the wire it is expressed in milliseconds.
	Duration time.Duration `json:"duration"`
	Read     bool          `json:"read"`
}

func (n Notification) MarshalJSON() ([]byte, error) {
	type alias Notification
	return json.Marshal(struct {
		alias
		Duration int64 `json:"duration"`
	}{alias(n), n.Duration.Milliseconds()})
}

func (n *Notification) UnmarshalJSON(data []byte) error {
	type alias Notification
	aux := struct {
		*alias
		Duration int64 `json:"duration"`
	}{alias: (*alias)(n)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Duration = time.Duration(aux.Duration) * time.Millisecond
	return nil
}

// DefaultIcon returns the icon used when a notification does not set one.
func (t NotificationType) DefaultIcon() string {
	switch t {
	case NotifySuccess:
		return "✅"
	case NotifyError:
		return "❌"
	case NotifyWarning:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// DefaultTitle returns the title used when a notification does not set one.
func (t NotificationType) DefaultTitle() string {
	switch t {
	case NotifySuccess:
		return "Success"
	case NotifyError:
		return "Error"
	case NotifyWarning:
		return "Warning"
	default:
		return "Info"
	}
}
