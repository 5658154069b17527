package interpreter

import "strings"

const maxSuggestions = 3

// categorySuggestions holds the fixed advisory strings per category.
var categorySuggestions = map[string][]string{
	"work":     {"Prepare agenda", "Set reminders"},
	"shopping": {"Make a list", "Compare prices"},
	"health":   {"Book appointment", "Bring ID"},
	"finance":  {"Check balance", "Keep docs ready"},
}

// Suggest returns at most three short advisory strings for the task.
func Suggest(text, category string) []string {
	suggestions := append([]string(nil), categorySuggestions[category]...)
	if len(strings.Fields(text)) > 8 {
		suggestions = append(suggestions, "Break into subtasks")
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
