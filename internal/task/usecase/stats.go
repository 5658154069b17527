package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-task-manager/internal/task"
)

// pendingMinutesThreshold is the pending workload, in estimated minutes,
// above which the time-volume recommendation fires.
const pendingMinutesThreshold = 300

func (uc implUseCase) Stats(ctx context.Context) (task.StatsOutput, error) {
	st, err := uc.repo.AggregateStats(ctx, time.Now())
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Stats.AggregateStats: %v", err)
		return task.StatsOutput{}, err
	}

	return task.StatsOutput{
		TotalTasks:            st.TotalTasks,
		CompletedTasks:        st.CompletedTasks,
		PendingTasks:          st.PendingTasks,
		OverdueTasks:          st.OverdueTasks,
		TotalEstimatedMinutes: st.TotalEstimatedMinutes,
	}, nil
}

func (uc implUseCase) Recommendations(ctx context.Context) ([]string, error) {
	st, err := uc.repo.AggregateStats(ctx, time.Now())
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Recommendations.AggregateStats: %v", err)
		return nil, err
	}

	// Rule order is fixed: backlog first, workload second, urgency last.
	recs := make([]string, 0, 3)

	if st.OverdueTasks > 0 {
		recs = append(recs, fmt.Sprintf(
			"You have %d overdue tasks. Consider rescheduling or completing them first.",
			st.OverdueTasks))
	}

	if st.PendingEstimatedMinutes > pendingMinutesThreshold {
		recs = append(recs, fmt.Sprintf(
			"Your pending tasks add up to %d estimated minutes. Consider spreading them over several days.",
			st.PendingEstimatedMinutes))
	}

	if st.HighPriorityPending > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d high priority tasks pending. Tackle those before anything else.",
			st.HighPriorityPending))
	}

	return recs, nil
}
