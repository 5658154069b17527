package task

import (
	"context"

	"smart-task-manager/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create interprets raw text into a structured task and persists it.
	Create(ctx context.Context, input CreateInput) (TaskOutput, error)

	// Preview interprets raw text without persisting anything.
	Preview(ctx context.Context, input CreateInput) (DraftOutput, error)

	// Detail returns a single task by id.
	Detail(ctx context.Context, id int64) (TaskOutput, error)

	// List returns active tasks (status != completed) ordered by due date
	// ascending, optionally narrowed by priority/category/due-window filters.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// ListCompleted returns completed tasks, newest created first.
	ListCompleted(ctx context.Context) (ListOutput, error)

	// ListOverdue returns tasks past due and not completed.
	ListOverdue(ctx context.Context) (ListOutput, error)

	// ListPendingFuture returns pending tasks due now or later.
	ListPendingFuture(ctx context.Context) (ListOutput, error)

	// Update replaces the full mutable attribute set of a task.
	Update(ctx context.Context, input UpdateInput) (TaskOutput, error)

	// SetStatus updates only the status field. Idempotent.
	SetStatus(ctx context.Context, id int64, status model.TaskStatus) error

	// Delete permanently removes a task.
	Delete(ctx context.Context, id int64) error

	// Stats recomputes aggregate counters from the full task set.
	Stats(ctx context.Context) (StatsOutput, error)

	// Recommendations returns rule-based advisory strings, fixed order:
	// overdue backlog, pending time volume, high-priority count.
	Recommendations(ctx context.Context) ([]string, error)
}
