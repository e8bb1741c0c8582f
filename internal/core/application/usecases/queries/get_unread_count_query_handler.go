package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnreadCountQueryHandler reads an account's unread message total.
type GetUnreadCountQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadCountQueryHandler creates a handler for unread badge queries.
func NewGetUnreadCountQueryHandler(db *gorm.DB) GetUnreadCountQueryHandler {
	return GetUnreadCountQueryHandler{db: db}
}

// Handle executes the unread badge query.
func (h GetUnreadCountQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadCountQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM messages
		WHERE receiver_id = ? AND read = false
	`, query.AccountID().Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
