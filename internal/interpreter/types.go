package interpreter

import (
	"time"

	"smart-task-manager/internal/model"
)

// Input is one free-text task description plus optional explicit overrides
// collected from the user. Zero-value fields mean "infer it".
type Input struct {
	Text     string
	Category string         // forced category, skips classification
	Priority model.Priority // forced priority, skips keyword tiers
	DueDate  *time.Time     // manual due timestamp, skips date parsing
	Duration int            // manual estimate in minutes, skips estimation
}
