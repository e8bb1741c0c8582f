package messagerepo

import (
	"context"
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"
	"agromarket/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMessageRepository implements ports.MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Add saves a new message to the database.
func (r *GormMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a message by ID.
func (r *GormMessageRepository) Get(ctx context.Context, id kernel.UUID) (*message.Message, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MessageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("message", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a message permanently.
func (r *GormMessageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MessageDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("message", id.String())
	}

	return nil
}

// GetConversation retrieves a conversation thread by its derived ID.
func (r *GormMessageRepository) GetConversation(ctx context.Context, id string) (*message.Conversation, error) {
	var dto ConversationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conversation", id)
		}
		return nil, err
	}

	return conversationToDomain(dto)
}

// UpsertConversation creates the thread on first contact and refreshes its
// preview columns afterwards.
func (r *GormMessageRepository) UpsertConversation(ctx context.Context, aggregate *message.Conversation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := conversationFromDomain(aggregate)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_message", "last_message_at"}),
	}).Create(&dto).Error
}

// MarkConversationRead flags every message addressed to readerID in the
// conversation as read.
func (r *GormMessageRepository) MarkConversationRead(
	ctx context.Context, conversationID string, readerID kernel.UUID,
) error {
	if err := readerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("conversation_id = ? AND receiver_id = ? AND read = false", conversationID, readerID.Bytes()).
		UpdateColumn("read", true).Error
}
