package notification

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

const (
	// maxAttempts is the number of delivery failures after which a
	// notification is parked as dead instead of retried.
	maxAttempts = 8

	// baseRetryDelay is doubled on every failed attempt.
	baseRetryDelay = 30 * time.Second
)

// Notification is an outbox row for an email that must eventually be sent.
// Rows are written in the same transaction as the business change that
// triggered them and delivered by a background dispatcher, so a mail provider
// outage never fails a user request.
type Notification struct {
	id             kernel.UUID
	recipientEmail string
	recipientName  string
	subject        string
	body           string
	attempts       int
	nextAttemptAt  time.Time
	sentAt         *time.Time
	dead           bool
	createdAt      time.Time

	isConstructed bool
}

// NewNotification creates an undelivered notification due immediately.
func NewNotification(id kernel.UUID, recipientEmail, recipientName, subject, body string, now time.Time) (*Notification, error) {
	n := &Notification{
		recipientName: recipientName,
		nextAttemptAt: now,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientEmail(recipientEmail),
		n.setSubject(subject),
		n.setBody(body),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	recipientEmail, recipientName, subject, body string,
	attempts int,
	nextAttemptAt time.Time,
	sentAt *time.Time,
	dead bool,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		recipientName: recipientName,
		attempts:      attempts,
		nextAttemptAt: nextAttemptAt,
		sentAt:        sentAt,
		dead:          dead,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setRecipientEmail(recipientEmail),
		n.setSubject(subject),
		n.setBody(body),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID          { return n.id }
func (n *Notification) RecipientEmail() string   { return n.recipientEmail }
func (n *Notification) RecipientName() string    { return n.recipientName }
func (n *Notification) Subject() string          { return n.subject }
func (n *Notification) Body() string             { return n.body }
func (n *Notification) Attempts() int            { return n.attempts }
func (n *Notification) NextAttemptAt() time.Time { return n.nextAttemptAt }
func (n *Notification) SentAt() *time.Time       { return n.sentAt }
func (n *Notification) Dead() bool               { return n.dead }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }

// IsDue reports whether the dispatcher should attempt delivery now.
func (n *Notification) IsDue(now time.Time) bool {
	return n.sentAt == nil && !n.dead && !n.nextAttemptAt.After(now)
}

// MarkSent records successful delivery.
func (n *Notification) MarkSent(now time.Time) {
	n.sentAt = &now
}

// RecordFailure counts a failed delivery attempt and schedules the next one
// with exponential backoff. After maxAttempts failures the notification is
// parked as dead and never retried.
func (n *Notification) RecordFailure(now time.Time) {
	n.attempts++
	if n.attempts >= maxAttempts {
		n.dead = true
		return
	}
	n.nextAttemptAt = now.Add(baseRetryDelay * (1 << (n.attempts - 1)))
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setRecipientEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("recipientEmail")
	}
	n.recipientEmail = email
	return nil
}

func (n *Notification) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	n.subject = subject
	return nil
}

func (n *Notification) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	n.body = body
	return nil
}
