package reminder

import "time"

// ScheduleInput asks for one reminder email ahead of a task's due date.
// Recipient falls back to the configured default address; LeadMinutes
// falls back to the configured default lead.
type ScheduleInput struct {
	TaskID        int64
	Recipient     string
	RecipientName string
	LeadMinutes   int
	Message       string // optional note rendered into the reminder email
}

// ScheduleOutput reports how the reminder was handled.
type ScheduleOutput struct {
	TaskID        int64
	Recipient     string
	SendAt        time.Time
	SentNow       bool   // send time was already past, email went out immediately
	CalendarEvent string // calendar event link, empty when mirroring is off or failed
}
