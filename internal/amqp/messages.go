package amqp

import (
	"encoding/json"
	"time"

	"financetracker/internal/core"
)

// NotificationEvent is the wire form of a notification forwarded to the
// message broker so external consumers can react to tracker events.
type NotificationEvent struct {
	NotificationID int       `json:"notificationId"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewNotificationEvent builds an event from an in-process notification.
func NewNotificationEvent(n core.Notification) *NotificationEvent {
	return &NotificationEvent{
		NotificationID: n.ID,
		Type:           string(n.Type),
		Title:          n.Title,
		Message:        n.Message,
		Timestamp:      n.Timestamp,
	}
}

// ToJSON converts the event to JSON bytes
func (e *NotificationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// NotificationEventFromJSON creates an event from JSON bytes
func NotificationEventFromJSON(data []byte) (*NotificationEvent, error) {
	var event NotificationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
