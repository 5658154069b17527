// Package digest builds and sends the daily task rundown email.
package digest

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/reminder"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/brevo"
	pkgLog "smart-task-manager/pkg/log"
)

// Config carries the digest recipient and sender identity.
type Config struct {
	Recipient     string
	RecipientName string
	SenderEmail   string
	SenderName    string
}

type Service struct {
	l      pkgLog.Logger
	repo   repository.Repository
	mailer reminder.Mailer
	cfg    Config
}

func New(l pkgLog.Logger, repo repository.Repository, mailer reminder.Mailer, cfg Config) *Service {
	return &Service{
		l:      l,
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
	}
}

// Run assembles the overdue and upcoming listings and mails them out.
// An empty board skips the email entirely.
func (s *Service) Run(ctx context.Context) error {
	now := time.Now()

	overdue, err := s.repo.ListTasks(ctx, repository.ListTasksOptions{
		View: repository.ViewOverdue,
		Now:  now,
	})
	if err != nil {
		s.l.Errorf(ctx, "digest.Run.ListTasks(overdue): %v", err)
		return err
	}

	upcoming, err := s.repo.ListTasks(ctx, repository.ListTasksOptions{
		View: repository.ViewPendingFuture,
		Now:  now,
	})
	if err != nil {
		s.l.Errorf(ctx, "digest.Run.ListTasks(pending): %v", err)
		return err
	}

	if len(overdue) == 0 && len(upcoming) == 0 {
		s.l.Infof(ctx, "digest: nothing to report, skipping email")
		return nil
	}

	err = s.mailer.SendEmail(ctx, brevo.SendEmailRequest{
		Sender:      brevo.Party{Name: s.cfg.SenderName, Email: s.cfg.SenderEmail},
		To:          []brevo.Party{{Name: s.cfg.RecipientName, Email: s.cfg.Recipient}},
		Subject:     fmt.Sprintf("Daily task digest: %d overdue, %d upcoming", len(overdue), len(upcoming)),
		HTMLContent: digestBody(overdue, upcoming),
	})
	if err != nil {
		s.l.Errorf(ctx, "digest.Run.SendEmail: %v", err)
		return err
	}

	s.l.Infof(ctx, "digest: sent (%d overdue, %d upcoming)", len(overdue), len(upcoming))
	return nil
}

func digestBody(overdue, upcoming []model.Task) string {
	var b strings.Builder

	b.WriteString("<h3>Daily task digest</h3>")
	writeSection(&b, "Overdue", overdue)
	writeSection(&b, "Upcoming", upcoming)

	return b.String()
}

func writeSection(b *strings.Builder, title string, tasks []model.Task) {
	if len(tasks) == 0 {
		return
	}

	fmt.Fprintf(b, "<h4>%s</h4><ul>", title)
	for _, t := range tasks {
		fmt.Fprintf(b, "<li><strong>%s</strong> (%s, %s) due %s</li>",
			html.EscapeString(t.Name),
			html.EscapeString(t.Category),
			t.Priority,
			t.DueDate.Format("2006-01-02 15:04"))
	}
	b.WriteString("</ul>")
}
