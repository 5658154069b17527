package gcalendar

import "time"

// TaskEventRequest is the input for mirroring a task into the calendar.
type TaskEventRequest struct {
	CalendarID      string
	Title           string
	Notes           string
	Due             time.Time
	DurationMinutes int
	Timezone        string // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Start    time.Time
	End      time.Time
}
