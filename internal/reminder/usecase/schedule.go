package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/reminder"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/pkg/brevo"
	"smart-task-manager/pkg/gcalendar"
)

func (uc implUseCase) Schedule(ctx context.Context, input reminder.ScheduleInput) (reminder.ScheduleOutput, error) {
	recipient := input.Recipient
	if recipient == "" {
		recipient = uc.cfg.DefaultRecipient
	}
	if recipient == "" {
		return reminder.ScheduleOutput{}, reminder.ErrNoRecipient
	}

	lead := input.LeadMinutes
	if lead <= 0 {
		lead = uc.cfg.DefaultLeadMinutes
	}

	t, err := uc.repo.GetTask(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return reminder.ScheduleOutput{}, reminder.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "reminder.usecase.Schedule.GetTask: %v", err)
		return reminder.ScheduleOutput{}, err
	}
	if t.Status == model.StatusCompleted {
		return reminder.ScheduleOutput{}, reminder.ErrTaskCompleted
	}

	sendAt := t.DueDate.Add(-time.Duration(lead) * time.Minute)
	out := reminder.ScheduleOutput{
		TaskID:    t.ID,
		Recipient: recipient,
		SendAt:    sendAt,
	}

	if uc.calendar != nil && uc.cfg.CalendarID != "" {
		event, err := uc.calendar.CreateTaskEvent(ctx, gcalendar.TaskEventRequest{
			CalendarID:      uc.cfg.CalendarID,
			Title:           t.Name,
			Notes:           fmt.Sprintf("Category: %s, priority: %s", t.Category, t.Priority),
			Due:             t.DueDate,
			DurationMinutes: t.EstimatedDuration,
			Timezone:        uc.cfg.Timezone,
		})
		if err != nil {
			// Mirroring is best effort; the reminder itself still goes out.
			uc.l.Warnf(ctx, "reminder.usecase.Schedule.CreateTaskEvent: %v", err)
		} else {
			out.CalendarEvent = event.HtmlLink
		}
	}

	if !sendAt.After(time.Now()) {
		if err := uc.send(ctx, t, recipient, input.RecipientName, input.Message); err != nil {
			uc.l.Errorf(ctx, "reminder.usecase.Schedule.send: %v", err)
			return reminder.ScheduleOutput{}, reminder.ErrSendFailed
		}
		out.SentNow = true
		return out, nil
	}

	uc.sched.ScheduleOnce(sendAt, func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := uc.send(sendCtx, t, recipient, input.RecipientName, input.Message); err != nil {
			uc.l.Errorf(sendCtx, "reminder.usecase.Schedule.deferredSend: task %d: %v", t.ID, err)
		}
	})

	return out, nil
}

func (uc implUseCase) send(ctx context.Context, t model.Task, toEmail, toName, message string) error {
	return uc.mailer.SendEmail(ctx, brevo.SendEmailRequest{
		Sender:      brevo.Party{Name: uc.cfg.SenderName, Email: uc.cfg.SenderEmail},
		To:          []brevo.Party{{Name: toName, Email: toEmail}},
		Subject:     fmt.Sprintf("Reminder: %s", t.Name),
		HTMLContent: reminderBody(t, message),
	})
}

func reminderBody(t model.Task, message string) string {
	body := fmt.Sprintf(
		`<h3>Task reminder</h3>
<p><strong>%s</strong></p>
<ul>
<li>Due: %s</li>
<li>Category: %s</li>
<li>Priority: %s</li>
<li>Estimated: %d minutes</li>
</ul>`,
		html.EscapeString(t.Name),
		t.DueDate.Format("2006-01-02 15:04"),
		html.EscapeString(t.Category),
		t.Priority,
		t.EstimatedDuration,
	)
	if message != "" {
		body += fmt.Sprintf("\n<p><strong>Message:</strong> %s</p>", html.EscapeString(message))
	}
	return body
}
