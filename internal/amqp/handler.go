package amqp

import "log/slog"

// LogHandler returns a consumer handler that records each notification event
// through logger and acknowledges it. Decode failures are rejected before the
// handler runs, so it never fails a delivery itself.
func LogHandler(logger *slog.Logger) func(*NotificationEvent) error {
	return func(event *NotificationEvent) error {
		logger.Info("Notification event received",
			"notification_id", event.NotificationID,
			"type", event.Type,
			"title", event.Title,
			"message", event.Message)
		return nil
	}
}
