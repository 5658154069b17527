package usecase

import (
	"smart-task-manager/internal/reminder"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/gcalendar"
	pkgLog "smart-task-manager/pkg/log"
)

// Config carries sender identity and reminder defaults.
type Config struct {
	SenderEmail        string
	SenderName         string
	DefaultRecipient   string
	DefaultLeadMinutes int
	CalendarID         string // empty disables calendar mirroring
	Timezone           string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	mailer   reminder.Mailer
	sched    reminder.Scheduler
	calendar *gcalendar.Client // nil when mirroring is off
	cfg      Config
}

var _ reminder.UseCase = &implUseCase{}

// New returns the reminder business logic. calendar may be nil.
func New(l pkgLog.Logger, repo repository.Repository, mailer reminder.Mailer, sched reminder.Scheduler, calendar *gcalendar.Client, cfg Config) reminder.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		mailer:   mailer,
		sched:    sched,
		calendar: calendar,
		cfg:      cfg,
	}
}
