package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

func (uc implUseCase) Detail(ctx context.Context, id int64) (task.TaskOutput, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Detail.GetTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: t}, nil
}

func (uc implUseCase) Update(ctx context.Context, input task.UpdateInput) (task.TaskOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return task.TaskOutput{}, task.ErrEmptyInput
	}
	if !input.Priority.Valid() {
		return task.TaskOutput{}, task.ErrInvalidPriority
	}

	// Status is only mutable through SetStatus, so carry the stored value.
	existing, err := uc.repo.GetTask(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.GetTask: %v", err)
		return task.TaskOutput{}, err
	}

	suggestions, err := json.Marshal(input.Suggestions)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update.Marshal: %v", err)
		return task.TaskOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:                input.ID,
		Name:              strings.TrimSpace(input.Name),
		Category:          input.Category,
		Priority:          input.Priority,
		DueDate:           input.DueDate,
		Status:            existing.Status,
		Tags:              input.Tags,
		EstimatedDuration: input.EstimatedDuration,
		Suggestions:       string(suggestions),
		Entities:          strings.Join(input.Entities, " "),
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Update.UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: updated}, nil
}

func (uc implUseCase) SetStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	if !status.Valid() {
		return task.ErrInvalidStatus
	}

	if err := uc.repo.SetTaskStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.SetStatus.SetTaskStatus: %v", err)
		return err
	}

	return nil
}

func (uc implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete.DeleteTask: %v", err)
		return err
	}

	return nil
}
