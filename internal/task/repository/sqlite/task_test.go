package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
	"smart-task-manager/internal/task/repository/sqlite"
	pkgLog "smart-task-manager/pkg/log"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any) {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any) {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any) {}
func (mockLogger) Warn(ctx context.Context, args ...any) {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Error(ctx context.Context, args ...any) {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any) {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

var _ pkgLog.Logger = mockLogger{}

func newTestRepository(t *testing.T) repository.Repository {
	t.Helper()

	db, err := sqlite.NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return sqlite.New(mockLogger{}, db)
}

func createOpts(name string, due time.Time) repository.CreateTaskOptions {
	return repository.CreateTaskOptions{
		Name:              name,
		Category:          "work",
		Priority:          model.PriorityMedium,
		DueDate:           due,
		Status:            model.StatusPending,
		Tags:              "#work",
		CreatedAt:         time.Now().Truncate(time.Second),
		EstimatedDuration: 45,
		Suggestions:       `["Block focus time on calendar"]`,
		Entities:          "John",
	}
}

func TestCreateAndGetTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	due := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	created, err := repo.CreateTask(ctx, createOpts("write report", due))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected non-zero id")
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Name != "write report" {
		t.Errorf("Name = %q, want %q", got.Name, "write report")
	}
	if !got.DueDate.Equal(due) {
		t.Errorf("DueDate = %v, want %v", got.DueDate, due)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want medium", got.Priority)
	}
	if got.EstimatedDuration != 45 {
		t.Errorf("EstimatedDuration = %d, want 45", got.EstimatedDuration)
	}
	if got.Suggestions != `["Block focus time on calendar"]` {
		t.Errorf("Suggestions = %q", got.Suggestions)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetTask(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListTasksViews(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	past, err := repo.CreateTask(ctx, createOpts("overdue task", now.Add(-48*time.Hour)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	future, err := repo.CreateTask(ctx, createOpts("future task", now.Add(48*time.Hour)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	done, err := repo.CreateTask(ctx, createOpts("done task", now.Add(24*time.Hour)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := repo.SetTaskStatus(ctx, done.ID, model.StatusCompleted); err != nil {
		t.Fatalf("SetTaskStatus: %v", err)
	}

	tests := []struct {
		name    string
		view    repository.ListView
		wantIDs []int64
	}{
		{name: "active sorts by due date", view: repository.ViewActive, wantIDs: []int64{past.ID, future.ID}},
		{name: "completed", view: repository.ViewCompleted, wantIDs: []int64{done.ID}},
		{name: "overdue", view: repository.ViewOverdue, wantIDs: []int64{past.ID}},
		{name: "pending future", view: repository.ViewPendingFuture, wantIDs: []int64{future.ID}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ListTasks(ctx, repository.ListTasksOptions{View: tc.view, Now: now})
			if err != nil {
				t.Fatalf("ListTasks: %v", err)
			}
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("len = %d, want %d", len(got), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if got[i].ID != id {
					t.Errorf("got[%d].ID = %d, want %d", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestListTasksFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	opts := createOpts("buy groceries", now.Add(2*time.Hour))
	opts.Category = "shopping"
	opts.Priority = model.PriorityHigh
	shopping, err := repo.CreateTask(ctx, opts)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := repo.CreateTask(ctx, createOpts("write report", now.Add(10*24*time.Hour))); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	got, err := repo.ListTasks(ctx, repository.ListTasksOptions{
		View:     repository.ViewActive,
		Category: "shopping",
		Now:      now,
	})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 1 || got[0].ID != shopping.ID {
		t.Fatalf("category filter returned %d tasks", len(got))
	}

	got, err = repo.ListTasks(ctx, repository.ListTasksOptions{
		View:     repository.ViewActive,
		Priority: model.PriorityHigh,
		Due:      "today",
		Now:      now,
	})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(got) != 1 || got[0].ID != shopping.ID {
		t.Fatalf("priority+due filter returned %d tasks", len(got))
	}
}

func TestListTasksCalendarWindows(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Wednesday; the surrounding week runs Mon Sep 14 through Sun Sep 20.
	now := time.Date(2026, 9, 16, 12, 0, 0, 0, time.Local)

	dues := map[string]time.Time{
		"early month":     time.Date(2026, 9, 2, 8, 0, 0, 0, time.Local),
		"monday deadline": time.Date(2026, 9, 14, 9, 0, 0, 0, time.Local),
		"sunday deadline": time.Date(2026, 9, 20, 18, 0, 0, 0, time.Local),
		"next week":       time.Date(2026, 9, 22, 10, 0, 0, 0, time.Local),
		"next month":      time.Date(2026, 10, 3, 9, 0, 0, 0, time.Local),
	}
	for name, due := range dues {
		if _, err := repo.CreateTask(ctx, createOpts(name, due)); err != nil {
			t.Fatalf("CreateTask %q: %v", name, err)
		}
	}

	tests := []struct {
		due  string
		want []string // due_date ASC
	}{
		{"week", []string{"monday deadline", "sunday deadline"}},
		{"month", []string{"early month", "monday deadline", "sunday deadline", "next week"}},
	}
	for _, tc := range tests {
		got, err := repo.ListTasks(ctx, repository.ListTasksOptions{
			View: repository.ViewActive,
			Due:  tc.due,
			Now:  now,
		})
		if err != nil {
			t.Fatalf("ListTasks due=%s: %v", tc.due, err)
		}
		var names []string
		for _, task := range got {
			names = append(names, task.Name)
		}
		if len(names) != len(tc.want) {
			t.Fatalf("due=%s returned %v, want %v", tc.due, names, tc.want)
		}
		for i := range tc.want {
			if names[i] != tc.want[i] {
				t.Errorf("due=%s returned %v, want %v", tc.due, names, tc.want)
				break
			}
		}
	}
}

func TestUpdateTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	created, err := repo.CreateTask(ctx, createOpts("draft report", now.Add(24*time.Hour)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	newDue := now.Add(72 * time.Hour)
	updated, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:                created.ID,
		Name:              "final report",
		Category:          "office",
		Priority:          model.PriorityHigh,
		DueDate:           newDue,
		Status:            model.StatusPending,
		Tags:              "#report",
		EstimatedDuration: 120,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Name != "final report" || updated.Category != "office" {
		t.Errorf("update not applied: %+v", updated)
	}
	if !updated.DueDate.Equal(newDue) {
		t.Errorf("DueDate = %v, want %v", updated.DueDate, newDue)
	}

	_, err = repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: 999, Name: "x", DueDate: newDue})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestSetTaskStatusIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, createOpts("call mom", time.Now().Add(time.Hour).Truncate(time.Second)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := repo.SetTaskStatus(ctx, created.ID, model.StatusCompleted); err != nil {
			t.Fatalf("SetTaskStatus #%d: %v", i+1, err)
		}
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Status != model.StatusCompleted {
		t.Errorf("Status = %q, want completed", got.Status)
	}

	if err := repo.SetTaskStatus(ctx, 999, model.StatusCompleted); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing task: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, createOpts("temp task", time.Now().Add(time.Hour).Truncate(time.Second)))
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestAggregateStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	overdueOpts := createOpts("overdue", now.Add(-24*time.Hour))
	overdueOpts.Priority = model.PriorityHigh
	overdueOpts.EstimatedDuration = 60
	if _, err := repo.CreateTask(ctx, overdueOpts); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pendingOpts := createOpts("pending", now.Add(24*time.Hour))
	pendingOpts.EstimatedDuration = 30
	if _, err := repo.CreateTask(ctx, pendingOpts); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	doneOpts := createOpts("done", now.Add(48*time.Hour))
	doneOpts.EstimatedDuration = 90
	done, err := repo.CreateTask(ctx, doneOpts)
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if err := repo.SetTaskStatus(ctx, done.ID, model.StatusCompleted); err != nil {
		t.Fatalf("SetTaskStatus: %v", err)
	}

	st, err := repo.AggregateStats(ctx, now)
	if err != nil {
		t.Fatalf("AggregateStats: %v", err)
	}

	if st.TotalTasks != 3 {
		t.Errorf("TotalTasks = %d, want 3", st.TotalTasks)
	}
	if st.CompletedTasks != 1 {
		t.Errorf("CompletedTasks = %d, want 1", st.CompletedTasks)
	}
	if st.PendingTasks != 2 {
		t.Errorf("PendingTasks = %d, want 2", st.PendingTasks)
	}
	if st.OverdueTasks != 1 {
		t.Errorf("OverdueTasks = %d, want 1", st.OverdueTasks)
	}
	if st.TotalEstimatedMinutes != 180 {
		t.Errorf("TotalEstimatedMinutes = %d, want 180", st.TotalEstimatedMinutes)
	}
	if st.PendingEstimatedMinutes != 90 {
		t.Errorf("PendingEstimatedMinutes = %d, want 90", st.PendingEstimatedMinutes)
	}
	if st.HighPriorityPending != 1 {
		t.Errorf("HighPriorityPending = %d, want 1", st.HighPriorityPending)
	}
}
