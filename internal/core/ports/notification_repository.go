package ports

import (
	"context"
	"time"

	"agromarket/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for the email
// outbox.
type NotificationRepository interface {
	// Add persists a new outbox row.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists delivery bookkeeping changes to an outbox row.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// GetDue retrieves up to limit undelivered rows whose next attempt time
	// has passed, oldest first.
	GetDue(ctx context.Context, now time.Time, limit int) ([]*notification.Notification, error)
}
