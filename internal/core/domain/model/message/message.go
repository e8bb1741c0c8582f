package message

import (
	"errors"
	"strings"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// ConversationID derives the deterministic identifier of the conversation
// between two accounts. Both orderings of the pair map to the same ID.
func ConversationID(a, b kernel.UUID) string {
	ids := []string{a.String(), b.String()}
	if ids[1] < ids[0] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	return strings.Join(ids, "_")
}

// Message is a single direct message between two accounts.
type Message struct {
	id             kernel.UUID
	conversationID string
	senderID       kernel.UUID
	receiverID     kernel.UUID
	text           string
	read           bool
	createdAt      time.Time

	isConstructed bool
}

// NewMessage creates an unread message and derives its conversation ID from
// the sender and receiver pair.
func NewMessage(id, senderID, receiverID kernel.UUID, text string, now time.Time) (*Message, error) {
	m := &Message{
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setParticipants(senderID, receiverID),
		m.setText(text),
	); err != nil {
		return nil, err
	}

	m.conversationID = ConversationID(senderID, receiverID)
	return m, nil
}

// RestoreMessage reconstructs a Message from persistence.
func RestoreMessage(
	id, senderID, receiverID kernel.UUID,
	conversationID, text string,
	read bool,
	createdAt time.Time,
) (*Message, error) {
	m := &Message{
		conversationID: conversationID,
		read:           read,
		createdAt:      createdAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setParticipants(senderID, receiverID),
		m.setText(text),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID         { return m.id }
func (m *Message) ConversationID() string  { return m.conversationID }
func (m *Message) SenderID() kernel.UUID   { return m.senderID }
func (m *Message) ReceiverID() kernel.UUID { return m.receiverID }
func (m *Message) Text() string            { return m.text }
func (m *Message) Read() bool              { return m.read }
func (m *Message) CreatedAt() time.Time    { return m.createdAt }

// MarkRead flags the message as seen by its receiver.
func (m *Message) MarkRead() { m.read = true }

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setParticipants(senderID, receiverID kernel.UUID) error {
	if err := errors.Join(senderID.Validate(), receiverID.Validate()); err != nil {
		return err
	}
	if senderID.IsEqual(receiverID) {
		return errs.NewValueIsInvalidError("receiver must differ from sender")
	}
	m.senderID = senderID
	m.receiverID = receiverID
	return nil
}

func (m *Message) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("text")
	}
	m.text = text
	return nil
}
