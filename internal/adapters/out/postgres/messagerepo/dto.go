// Package messagerepo persists direct messages and conversation threads.
package messagerepo

import (
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/message"

	"github.com/google/uuid"
)

// MessageDTO maps a direct message onto the messages table.
type MessageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ConversationID string    `gorm:"index"`
	SenderID       uuid.UUID `gorm:"type:uuid"`
	ReceiverID     uuid.UUID `gorm:"type:uuid;index"`
	Text           string    `gorm:""`
	Read           bool      `gorm:""`
	CreatedAt      time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "messages".
func (MessageDTO) TableName() string {
	return "messages"
}

// ConversationDTO maps a conversation thread onto the conversations table.
// The primary key is the derived pair identifier, not a UUID.
type ConversationDTO struct {
	ID            string    `gorm:"primaryKey"`
	ParticipantA  uuid.UUID `gorm:"type:uuid;index"`
	ParticipantB  uuid.UUID `gorm:"type:uuid;index"`
	LastMessage   string    `gorm:""`
	LastMessageAt time.Time `gorm:""`
}

// TableName overrides GORM's default naming to use "conversations".
func (ConversationDTO) TableName() string {
	return "conversations"
}

func fromDomain(aggregate *message.Message) MessageDTO {
	return MessageDTO{
		ID:             aggregate.ID().Bytes(),
		ConversationID: aggregate.ConversationID(),
		SenderID:       aggregate.SenderID().Bytes(),
		ReceiverID:     aggregate.ReceiverID().Bytes(),
		Text:           aggregate.Text(),
		Read:           aggregate.Read(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto MessageDTO) (*message.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	return message.RestoreMessage(id, senderID, receiverID, dto.ConversationID, dto.Text, dto.Read, dto.CreatedAt)
}

func conversationFromDomain(aggregate *message.Conversation) ConversationDTO {
	return ConversationDTO{
		ID:            aggregate.ID(),
		ParticipantA:  aggregate.ParticipantA().Bytes(),
		ParticipantB:  aggregate.ParticipantB().Bytes(),
		LastMessage:   aggregate.LastMessage(),
		LastMessageAt: aggregate.LastMessageAt(),
	}
}

func conversationToDomain(dto ConversationDTO) (*message.Conversation, error) {
	participantA, err := kernel.UUIDFromBytes(dto.ParticipantA[:])
	if err != nil {
		return nil, err
	}

	participantB, err := kernel.UUIDFromBytes(dto.ParticipantB[:])
	if err != nil {
		return nil, err
	}

	return message.RestoreConversation(dto.ID, participantA, participantB, dto.LastMessage, dto.LastMessageAt)
}
