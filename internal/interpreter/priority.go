package interpreter

import (
	"strings"

	"smart-task-manager/internal/model"
)

// priorityTiers is an ordered (keywords, tier) sequence; the first tier with
// any substring match wins.
var priorityTiers = []struct {
	keywords []string
	priority model.Priority
}{
	{[]string{"urgent", "asap"}, model.PriorityHigh},
	{[]string{"important", "priority"}, model.PriorityMedium},
}

// InferPriority scans the text for urgency keywords; the default tier is low.
func InferPriority(text string) model.Priority {
	lower := strings.ToLower(text)
	for _, tier := range priorityTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return tier.priority
			}
		}
	}
	return model.PriorityLow
}
