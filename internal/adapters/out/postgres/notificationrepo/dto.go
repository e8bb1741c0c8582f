// Package notificationrepo persists the email outbox.
package notificationrepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO maps an outbox row onto the notifications table.
type NotificationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientEmail string     `gorm:""`
	RecipientName  string     `gorm:""`
	Subject        string     `gorm:""`
	Body           string     `gorm:""`
	Attempts       int        `gorm:""`
	NextAttemptAt  time.Time  `gorm:"index"`
	SentAt         *time.Time `gorm:""`
	Dead           bool       `gorm:""`
	CreatedAt      time.Time  `gorm:""`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:             aggregate.ID().Bytes(),
		RecipientEmail: aggregate.RecipientEmail(),
		RecipientName:  aggregate.RecipientName(),
		Subject:        aggregate.Subject(),
		Body:           aggregate.Body(),
		Attempts:       aggregate.Attempts(),
		NextAttemptAt:  aggregate.NextAttemptAt(),
		SentAt:         aggregate.SentAt(),
		Dead:           aggregate.Dead(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		dto.RecipientEmail, dto.RecipientName, dto.Subject, dto.Body,
		dto.Attempts,
		dto.NextAttemptAt,
		dto.SentAt,
		dto.Dead,
		dto.CreatedAt,
	)
}
