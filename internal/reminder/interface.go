package reminder

import (
	"context"
	"time"

	"smart-task-manager/pkg/brevo"
)

// Mailer sends transactional email. Satisfied by pkg/brevo.Client.
type Mailer interface {
	SendEmail(ctx context.Context, req brevo.SendEmailRequest) error
}

// Scheduler runs a job once at a point in time. Satisfied by pkg/scheduler.
type Scheduler interface {
	ScheduleOnce(at time.Time, job func())
}

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Schedule arranges an email reminder ahead of a task's due date.
	// A send time already in the past triggers an immediate send and the
	// email outcome is returned to the caller.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
