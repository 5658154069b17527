package task

import (
	"time"

	"smart-task-manager/internal/model"
)

// CreateInput is the input for task creation and preview. Optional fields
// override the interpreter's inference when set.
type CreateInput struct {
	Text     string
	Category string         // forced category (optional)
	Priority model.Priority // forced priority (optional)
	DueDate  *time.Time     // manual due timestamp (optional)
	Duration int            // manual estimate in minutes (optional)
}

// UpdateInput is the full mutable attribute set of a task. All fields are
// written as-is: last writer wins, no partial-field semantics.
type UpdateInput struct {
	ID                int64
	Name              string
	Category          string
	Priority          model.Priority
	DueDate           time.Time
	Tags              string
	EstimatedDuration int
	Suggestions       []string
	Entities          []string
}

// ListInput narrows the active-task listing. Empty fields mean no filter.
type ListInput struct {
	Priority model.Priority
	Category string
	Due      string // today | week | month | overdue
}

// TaskOutput wraps a single persisted task.
type TaskOutput struct {
	Task model.Task
}

// DraftOutput wraps an interpreted but unpersisted task.
type DraftOutput struct {
	Draft model.TaskDraft
}

// ListOutput wraps a task listing.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// StatsOutput is the on-demand analytics snapshot.
type StatsOutput struct {
	TotalTasks            int
	CompletedTasks        int
	PendingTasks          int
	OverdueTasks          int
	TotalEstimatedMinutes int
}
