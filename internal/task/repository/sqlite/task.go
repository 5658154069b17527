package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task/repository"
)

const datetimeLayout = "2006-01-02 15:04:05"

const taskColumns = "task_id, task_name, category, priority, due_date, status, tags, created_at, estimated_duration, ai_suggestions, context_keywords"

func (r implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (task_name, category, priority, due_date, status, tags, created_at, estimated_duration, ai_suggestions, context_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		opt.Name,
		opt.Category,
		string(opt.Priority),
		opt.DueDate.Format(datetimeLayout),
		string(opt.Status),
		opt.Tags,
		opt.CreatedAt.Format(datetimeLayout),
		opt.EstimatedDuration,
		opt.Suggestions,
		opt.Entities,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask.ExecContext: %v", err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.CreateTask.LastInsertId: %v", err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	return r.GetTask(ctx, id)
}

func (r implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT %s FROM tasks WHERE task_id = ?", taskColumns), id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "task.repository.sqlite.GetTask.scanTask: %v", err)
		return model.Task{}, repository.ErrFailedToGet
	}

	return t, nil
}

func (r implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	where, args, orderBy, err := buildListQuery(opt)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY %s", taskColumns, where, orderBy)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks.QueryContext: %v", err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "task.repository.sqlite.ListTasks.scanTask: %v", err)
			return nil, repository.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.ListTasks.rows: %v", err)
		return nil, repository.ErrFailedToList
	}

	return tasks, nil
}

func (r implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks
		SET task_name = ?, category = ?, priority = ?, due_date = ?, status = ?, tags = ?, estimated_duration = ?, ai_suggestions = ?, context_keywords = ?
		WHERE task_id = ?`,
		opt.Name,
		opt.Category,
		string(opt.Priority),
		opt.DueDate.Format(datetimeLayout),
		string(opt.Status),
		opt.Tags,
		opt.EstimatedDuration,
		opt.Suggestions,
		opt.Entities,
		opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.UpdateTask.ExecContext: %v", err)
		return model.Task{}, repository.ErrFailedToUpdate
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.UpdateTask.RowsAffected: %v", err)
		return model.Task{}, repository.ErrFailedToUpdate
	}
	if affected == 0 {
		return model.Task{}, repository.ErrNotFound
	}

	return r.GetTask(ctx, opt.ID)
}

func (r implRepository) SetTaskStatus(ctx context.Context, id int64, status model.TaskStatus) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ? WHERE task_id = ?", string(status), id)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.SetTaskStatus.ExecContext: %v", err)
		return repository.ErrFailedToUpdate
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.SetTaskStatus.RowsAffected: %v", err)
		return repository.ErrFailedToUpdate
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r implRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE task_id = ?", id)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.DeleteTask.ExecContext: %v", err)
		return repository.ErrFailedToDelete
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.DeleteTask.RowsAffected: %v", err)
		return repository.ErrFailedToDelete
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r implRepository) AggregateStats(ctx context.Context, now time.Time) (repository.Stats, error) {
	nowStr := now.Format(datetimeLayout)

	row := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status != 'completed' AND due_date < ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(estimated_duration), 0),
			COALESCE(SUM(CASE WHEN status != 'completed' THEN estimated_duration ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status != 'completed' AND priority = 'high' THEN 1 ELSE 0 END), 0)
		FROM tasks`, nowStr)

	var st repository.Stats
	if err := row.Scan(
		&st.TotalTasks,
		&st.CompletedTasks,
		&st.PendingTasks,
		&st.OverdueTasks,
		&st.TotalEstimatedMinutes,
		&st.PendingEstimatedMinutes,
		&st.HighPriorityPending,
	); err != nil {
		r.l.Errorf(ctx, "task.repository.sqlite.AggregateStats.Scan: %v", err)
		return repository.Stats{}, repository.ErrFailedToList
	}

	return st, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t        model.Task
		priority string
		status   string
		due      string
		created  string
	)

	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Category,
		&priority,
		&due,
		&status,
		&t.Tags,
		&created,
		&t.EstimatedDuration,
		&t.Suggestions,
		&t.Entities,
	); err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.Status = model.TaskStatus(status)

	dueDate, err := time.ParseInLocation(datetimeLayout, due, time.Local)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse due_date %q: %w", due, err)
	}
	t.DueDate = dueDate

	createdAt, err := time.ParseInLocation(datetimeLayout, created, time.Local)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	t.CreatedAt = createdAt

	return t, nil
}
