package usecase

import (
	"context"
	"time"

	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

var validDueFilters = map[string]bool{
	"today":   true,
	"week":    true,
	"month":   true,
	"overdue": true,
}

func (uc implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if input.Priority != "" && !input.Priority.Valid() {
		return task.ListOutput{}, task.ErrInvalidFilter
	}
	if input.Due != "" && !validDueFilters[input.Due] {
		return task.ListOutput{}, task.ErrInvalidFilter
	}

	return uc.list(ctx, repository.ListTasksOptions{
		View:     repository.ViewActive,
		Priority: input.Priority,
		Category: input.Category,
		Due:      input.Due,
		Now:      time.Now(),
	})
}

func (uc implUseCase) ListCompleted(ctx context.Context) (task.ListOutput, error) {
	return uc.list(ctx, repository.ListTasksOptions{View: repository.ViewCompleted})
}

func (uc implUseCase) ListOverdue(ctx context.Context) (task.ListOutput, error) {
	return uc.list(ctx, repository.ListTasksOptions{
		View: repository.ViewOverdue,
		Now:  time.Now(),
	})
}

func (uc implUseCase) ListPendingFuture(ctx context.Context) (task.ListOutput, error) {
	return uc.list(ctx, repository.ListTasksOptions{
		View: repository.ViewPendingFuture,
		Now:  time.Now(),
	})
}

func (uc implUseCase) list(ctx context.Context, opt repository.ListTasksOptions) (task.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.list.ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Count: len(tasks)}, nil
}
