// Package jobs provides scheduled background tasks for the marketplace,
// implemented with github.com/robfig/cron/v3. The only job today is the
// email outbox dispatcher; JobManager exists so the composition root keeps a
// single start/stop surface as more jobs appear.
package jobs

import (
	"fmt"
	"log/slog"

	"agromarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationDispatchJob *NotificationDispatchJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	dispatchHandler commands.DispatchNotificationsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationDispatchJob: NewNotificationDispatchJob(dispatchHandler, logger),
	}
}

// StartAll starts all scheduled jobs. Returns an error if any job fails to
// start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationDispatchJob.Stop()
}
