package sqlite

import (
	"fmt"
	"strings"
	"time"

	"smart-task-manager/internal/task/repository"
)

// buildListQuery translates ListTasksOptions into a WHERE clause, its
// args and an ORDER BY, keeping filter order stable.
func buildListQuery(opt repository.ListTasksOptions) (string, []any, string, error) {
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}
	nowStr := now.Format(datetimeLayout)

	var (
		conds   []string
		args    []any
		orderBy string
	)

	switch opt.View {
	case repository.ViewActive, "":
		conds = append(conds, "status != 'completed'")
		orderBy = "due_date ASC"
	case repository.ViewCompleted:
		conds = append(conds, "status = 'completed'")
		orderBy = "created_at DESC"
	case repository.ViewOverdue:
		conds = append(conds, "status != 'completed'", "due_date < ?")
		args = append(args, nowStr)
		orderBy = "due_date ASC"
	case repository.ViewPendingFuture:
		conds = append(conds, "status = 'pending'", "due_date >= ?")
		args = append(args, nowStr)
		orderBy = "due_date ASC"
	default:
		return "", nil, "", fmt.Errorf("unsupported list view %q", opt.View)
	}

	if opt.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(opt.Priority))
	}

	if opt.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, opt.Category)
	}

	if opt.Due != "" {
		cond, dueArgs, err := buildDueWindow(opt.Due, now)
		if err != nil {
			return "", nil, "", err
		}
		conds = append(conds, cond)
		args = append(args, dueArgs...)
	}

	return strings.Join(conds, " AND "), args, orderBy, nil
}

func buildDueWindow(due string, now time.Time) (string, []any, error) {
	nowStr := now.Format(datetimeLayout)

	switch due {
	case "today":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 1)
		return "due_date >= ? AND due_date < ?",
			[]any{start.Format(datetimeLayout), end.Format(datetimeLayout)}, nil
	case "week":
		// Current calendar week, Monday through Sunday.
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		start := day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
		end := start.AddDate(0, 0, 7)
		return "due_date >= ? AND due_date < ?",
			[]any{start.Format(datetimeLayout), end.Format(datetimeLayout)}, nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		return "due_date >= ? AND due_date < ?",
			[]any{start.Format(datetimeLayout), end.Format(datetimeLayout)}, nil
	case "overdue":
		return "due_date < ?", []any{nowStr}, nil
	default:
		return "", nil, fmt.Errorf("unsupported due filter %q", due)
	}
}
