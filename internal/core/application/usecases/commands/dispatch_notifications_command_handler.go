package commands

import (
	"context"
	"time"

	"agromarket/internal/core/ports"
)

// DispatchNotificationsCommandHandler delivers due outbox rows through the
// mailer. A failed delivery reschedules the row with backoff instead of
// failing the run, so one unreachable recipient cannot block the rest of the
// batch.
type DispatchNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
	mailer     ports.Mailer
}

// NewDispatchNotificationsCommandHandler creates a handler for outbox
// delivery runs.
func NewDispatchNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	mailer ports.Mailer,
) DispatchNotificationsCommandHandler {
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		mailer:     mailer,
	}
}

// Handle processes one delivery run. Returns how many emails were delivered.
func (h *DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchNotificationsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	notificationRepo := uow.NotificationRepository()

	now := time.Now().UTC()
	due, err := notificationRepo.GetDue(ctx, now, dispatchBatchSize)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, n := range due {
		sendErr := h.mailer.Send(ctx, n.RecipientEmail(), n.RecipientName(), n.Subject(), n.Body())
		if sendErr != nil {
			n.RecordFailure(time.Now().UTC())
		} else {
			n.MarkSent(time.Now().UTC())
			sent++
		}

		if err = notificationRepo.Update(ctx, n); err != nil {
			return sent, err
		}
	}

	return sent, uow.Commit(ctx)
}
