package message

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
)

var ErrConversationIsNotConstructed = errors.New("Conversation must be created via NewConversation or RestoreConversation")

// Conversation is the thread between two accounts. It carries a denormalized
// preview of the latest message so conversation lists render without loading
// message rows.
type Conversation struct {
	id            string
	participantA  kernel.UUID
	participantB  kernel.UUID
	lastMessage   string
	lastMessageAt time.Time

	isConstructed bool
}

// NewConversation creates the thread for a participant pair. Participants are
// stored in the same order the conversation ID sorts them.
func NewConversation(a, b kernel.UUID, now time.Time) (*Conversation, error) {
	if err := errors.Join(a.Validate(), b.Validate()); err != nil {
		return nil, err
	}

	if b.String() < a.String() {
		a, b = b, a
	}

	return &Conversation{
		id:            ConversationID(a, b),
		participantA:  a,
		participantB:  b,
		lastMessageAt: now,
		isConstructed: true,
	}, nil
}

// RestoreConversation reconstructs a Conversation from persistence.
func RestoreConversation(
	id string,
	participantA, participantB kernel.UUID,
	lastMessage string,
	lastMessageAt time.Time,
) (*Conversation, error) {
	if err := errors.Join(participantA.Validate(), participantB.Validate()); err != nil {
		return nil, err
	}

	return &Conversation{
		id:            id,
		participantA:  participantA,
		participantB:  participantB,
		lastMessage:   lastMessage,
		lastMessageAt: lastMessageAt,
		isConstructed: true,
	}, nil
}

func (c *Conversation) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrConversationIsNotConstructed
	}
	return nil
}

func (c *Conversation) ID() string                { return c.id }
func (c *Conversation) ParticipantA() kernel.UUID { return c.participantA }
func (c *Conversation) ParticipantB() kernel.UUID { return c.participantB }
func (c *Conversation) LastMessage() string       { return c.lastMessage }
func (c *Conversation) LastMessageAt() time.Time  { return c.lastMessageAt }

// HasParticipant reports whether the account takes part in the conversation.
func (c *Conversation) HasParticipant(accountID kernel.UUID) bool {
	return accountID.IsEqual(c.participantA) || accountID.IsEqual(c.participantB)
}

// OtherParticipant returns the counterpart of the given account, or false if
// the account is not part of the conversation.
func (c *Conversation) OtherParticipant(accountID kernel.UUID) (kernel.UUID, bool) {
	switch {
	case accountID.IsEqual(c.participantA):
		return c.participantB, true
	case accountID.IsEqual(c.participantB):
		return c.participantA, true
	default:
		return kernel.UUID{}, false
	}
}

// RecordMessage refreshes the latest message preview.
func (c *Conversation) RecordMessage(text string, at time.Time) {
	c.lastMessage = text
	c.lastMessageAt = at
}
