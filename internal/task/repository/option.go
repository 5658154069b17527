package repository

import (
	"time"

	"smart-task-manager/internal/model"
)

// ListView picks which canned listing the query builds.
type ListView string

const (
	// ViewActive lists everything not completed, soonest due first.
	ViewActive ListView = "active"
	// ViewCompleted lists completed tasks, newest first.
	ViewCompleted ListView = "completed"
	// ViewOverdue lists not-completed tasks whose due date has passed.
	ViewOverdue ListView = "overdue"
	// ViewPendingFuture lists pending tasks due now or later.
	ViewPendingFuture ListView = "pending_future"
)

// CreateTaskOptions carries a fully interpreted task ready for insert.
type CreateTaskOptions struct {
	Name              string
	Category          string
	Priority          model.Priority
	DueDate           time.Time
	Status            model.TaskStatus
	Tags              string
	CreatedAt         time.Time
	EstimatedDuration int
	Suggestions       string
	Entities          string
}

// UpdateTaskOptions carries the full mutable field set for a task.
type UpdateTaskOptions struct {
	ID                int64
	Name              string
	Category          string
	Priority          model.Priority
	DueDate           time.Time
	Status            model.TaskStatus
	Tags              string
	EstimatedDuration int
	Suggestions       string
	Entities          string
}

// ListTasksOptions narrows a listing. Zero-valued filters are skipped.
type ListTasksOptions struct {
	View     ListView
	Priority model.Priority
	Category string
	Due      string    // today, week, month or overdue
	Now      time.Time // reference instant for due windows
}
