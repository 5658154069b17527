package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"smart-task-manager/internal/interpreter"
	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/internal/task/repository"
)

func (uc implUseCase) interpret(ctx context.Context, input task.CreateInput) (model.TaskDraft, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.TaskDraft{}, task.ErrEmptyInput
	}
	if input.Priority != "" && !input.Priority.Valid() {
		return model.TaskDraft{}, task.ErrInvalidPriority
	}

	return uc.interp.Interpret(ctx, interpreter.Input{
		Text:     text,
		Category: input.Category,
		Priority: input.Priority,
		DueDate:  input.DueDate,
		Duration: input.Duration,
	}), nil
}

func (uc implUseCase) Create(ctx context.Context, input task.CreateInput) (task.TaskOutput, error) {
	draft, err := uc.interpret(ctx, input)
	if err != nil {
		return task.TaskOutput{}, err
	}

	suggestions, err := json.Marshal(draft.Suggestions)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.Marshal: %v", err)
		return task.TaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Name:              draft.Name,
		Category:          draft.Category,
		Priority:          draft.Priority,
		DueDate:           draft.DueDate,
		Status:            draft.Status,
		Tags:              draft.Tags,
		CreatedAt:         time.Now(),
		EstimatedDuration: draft.EstimatedDuration,
		Suggestions:       string(suggestions),
		Entities:          strings.Join(draft.Entities, " "),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return task.TaskOutput{Task: created}, nil
}

func (uc implUseCase) Preview(ctx context.Context, input task.CreateInput) (task.DraftOutput, error) {
	draft, err := uc.interpret(ctx, input)
	if err != nil {
		return task.DraftOutput{}, err
	}

	return task.DraftOutput{Draft: draft}, nil
}
