package repository

import (
	"context"
	"time"

	"smart-task-manager/internal/model"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	SetTaskStatus(ctx context.Context, id int64, status model.TaskStatus) error
	DeleteTask(ctx context.Context, id int64) error
	AggregateStats(ctx context.Context, now time.Time) (Stats, error)
}

// Stats holds the counters recomputed from a full table scan.
type Stats struct {
	TotalTasks              int
	CompletedTasks          int
	PendingTasks            int
	OverdueTasks            int
	TotalEstimatedMinutes   int
	PendingEstimatedMinutes int // estimated minutes over not-completed tasks
	HighPriorityPending     int // high-priority, not completed
}
