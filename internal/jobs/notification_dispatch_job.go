package jobs

import (
	"context"
	"log/slog"

	"agromarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationDispatchJob drains the email outbox on a schedule. Runs every
// ten seconds so a transactional email normally leaves within seconds of the
// business change that produced it.
type NotificationDispatchJob struct {
	handler commands.DispatchNotificationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNotificationDispatchJob creates a job that triggers outbox delivery runs.
func NewNotificationDispatchJob(
	handler commands.DispatchNotificationsCommandHandler,
	logger *slog.Logger,
) *NotificationDispatchJob {
	return &NotificationDispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "notification_dispatch_job"),
	}
}

// Start begins the dispatch job, running every ten seconds.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchNotificationsCommand()

		sent, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification dispatch run failed", "error", handleErr)
			return
		}
		if sent > 0 {
			j.logger.InfoContext(ctx, "Delivered outbox notifications", "count", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started (running every ten seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *NotificationDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
