package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Priority is the urgency tier of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is one of the known tiers.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task is one unit of user-entered work with inferred metadata.
type Task struct {
	ID                int64      // store-assigned, never reused
	Name              string     // the trimmed original input
	Category          string     // closed label set, falls back to "personal"
	Priority          Priority   // high | medium | low
	DueDate           time.Time  // always concrete: date plus time of day
	Status            TaskStatus // pending | completed
	Tags              string     // space-joined hashtag set
	CreatedAt         time.Time  // store-assigned, immutable
	EstimatedDuration int        // minutes, floor 10
	Suggestions       string     // JSON-serialized list of advisory strings
	Entities          string     // space-joined extracted entity mentions
}

// TaskDraft is the interpreter output: a Task before the store assigns
// identity and creation time.
type TaskDraft struct {
	Name              string
	Category          string
	Priority          Priority
	DueDate           time.Time
	Status            TaskStatus
	Tags              string
	EstimatedDuration int
	Suggestions       []string
	Entities          []string
}
