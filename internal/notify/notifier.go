package notify

import "context"

// Notifier publishes kitchen alerts (e.g. high-risk feedback on a dish).
// The abstraction keeps the delivery channel swappable — log, email, chat.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
