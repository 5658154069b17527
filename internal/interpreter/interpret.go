package interpreter

import (
	"context"
	"strings"
	"time"

	"smart-task-manager/internal/model"
)

// Interpret composes date parsing, classification, duration estimation,
// suggestions and entity extraction into one task draft. Explicit overrides
// in the input short-circuit the corresponding inference step.
func (i *Interpreter) Interpret(ctx context.Context, in Input) model.TaskDraft {
	text := strings.TrimSpace(in.Text)
	now := time.Now()

	var due time.Time
	if in.DueDate != nil {
		due = *in.DueDate
	} else {
		due = i.dates.Parse(text, now)
	}

	category := in.Category
	if category == "" {
		category = i.classifier.Classify(text)
	}

	duration := in.Duration
	if duration <= 0 {
		duration = EstimateDuration(text, category)
	} else if duration < MinDuration {
		duration = MinDuration
	}

	priority := in.Priority
	if priority == "" {
		priority = InferPriority(text)
	}

	draft := model.TaskDraft{
		Name:              text,
		Category:          category,
		Priority:          priority,
		DueDate:           due,
		Status:            model.StatusPending,
		Tags:              i.extractor.Tags(text),
		EstimatedDuration: duration,
		Suggestions:       Suggest(text, category),
		Entities:          i.extractor.Entities(text),
	}

	i.l.Debugf(ctx, "interpreted %q: category=%s priority=%s due=%s duration=%dm",
		text, draft.Category, draft.Priority, draft.DueDate.Format(time.RFC3339), draft.EstimatedDuration)

	return draft
}
