package http

import (
	"time"

	"smart-task-manager/internal/model"
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Text     string `json:"text"     binding:"required"`
	Category string `json:"category" binding:"omitempty"`
	Priority string `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate  string `json:"due_date" binding:"omitempty"` // "2006-01-02 15:04:05"
	Duration int    `json:"duration" binding:"omitempty,min=0"`
}

func (r createReq) validate() error {
	if r.DueDate != "" {
		if _, err := time.ParseInLocation(response.DateTimeFormat, r.DueDate, time.Local); err != nil {
			return response.NewHTTPError(400, "due_date must use the format 2006-01-02 15:04:05")
		}
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	in := task.CreateInput{
		Text:     r.Text,
		Category: r.Category,
		Priority: model.Priority(r.Priority),
		Duration: r.Duration,
	}
	if r.DueDate != "" {
		due, _ := time.ParseInLocation(response.DateTimeFormat, r.DueDate, time.Local)
		in.DueDate = &due
	}
	return in
}

// ---

type listReq struct {
	Priority string `form:"priority" binding:"omitempty,oneof=high medium low"`
	Category string `form:"category"`
	Due      string `form:"due"      binding:"omitempty,oneof=today week month overdue"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Priority: model.Priority(r.Priority),
		Category: r.Category,
		Due:      r.Due,
	}
}

// ---

type updateReq struct {
	ID                int64    `json:"-"` // populated from URI param
	Name              string   `json:"name"               binding:"required,min=1"`
	Category          string   `json:"category"           binding:"required"`
	Priority          string   `json:"priority"           binding:"required,oneof=high medium low"`
	DueDate           string   `json:"due_date"           binding:"required"`
	Tags              string   `json:"tags"`
	EstimatedDuration int      `json:"estimated_duration" binding:"omitempty,min=0"`
	Suggestions       []string `json:"suggestions"`
	Entities          []string `json:"entities"`
}

func (r updateReq) validate() error {
	if _, err := time.ParseInLocation(response.DateTimeFormat, r.DueDate, time.Local); err != nil {
		return response.NewHTTPError(400, "due_date must use the format 2006-01-02 15:04:05")
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	due, _ := time.ParseInLocation(response.DateTimeFormat, r.DueDate, time.Local)
	return task.UpdateInput{
		ID:                r.ID,
		Name:              r.Name,
		Category:          r.Category,
		Priority:          model.Priority(r.Priority),
		DueDate:           due,
		Tags:              r.Tags,
		EstimatedDuration: r.EstimatedDuration,
		Suggestions:       r.Suggestions,
		Entities:          r.Entities,
	}
}

// ---

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (r setStatusReq) validate() error { return nil }

// --- Response DTOs ---

type taskResp struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	Priority          string            `json:"priority"`
	DueDate           response.DateTime `json:"due_date"`
	Status            string            `json:"status"`
	Tags              string            `json:"tags"`
	CreatedAt         response.DateTime `json:"created_at"`
	EstimatedDuration int               `json:"estimated_duration"`
	Suggestions       string            `json:"suggestions"`
	Entities          string            `json:"entities"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                t.ID,
		Name:              t.Name,
		Category:          t.Category,
		Priority:          string(t.Priority),
		DueDate:           response.DateTime(t.DueDate),
		Status:            string(t.Status),
		Tags:              t.Tags,
		CreatedAt:         response.DateTime(t.CreatedAt),
		EstimatedDuration: t.EstimatedDuration,
		Suggestions:       t.Suggestions,
		Entities:          t.Entities,
	}
}

type draftResp struct {
	Name              string            `json:"name"`
	Category          string            `json:"category"`
	Priority          string            `json:"priority"`
	DueDate           response.DateTime `json:"due_date"`
	Status            string            `json:"status"`
	Tags              string            `json:"tags"`
	EstimatedDuration int               `json:"estimated_duration"`
	Suggestions       []string          `json:"suggestions"`
	Entities          []string          `json:"entities"`
}

func (h *handler) newDraftResp(output task.DraftOutput) draftResp {
	d := output.Draft
	return draftResp{
		Name:              d.Name,
		Category:          d.Category,
		Priority:          string(d.Priority),
		DueDate:           response.DateTime(d.DueDate),
		Status:            string(d.Status),
		Tags:              d.Tags,
		EstimatedDuration: d.EstimatedDuration,
		Suggestions:       d.Suggestions,
		Entities:          d.Entities,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(output task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(output.Tasks))
	for _, t := range output.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{Tasks: tasks, Count: output.Count}
}

type statsResp struct {
	TotalTasks            int `json:"total_tasks"`
	CompletedTasks        int `json:"completed_tasks"`
	PendingTasks          int `json:"pending_tasks"`
	OverdueTasks          int `json:"overdue_tasks"`
	TotalEstimatedMinutes int `json:"total_estimated_minutes"`
}

func (h *handler) newStatsResp(output task.StatsOutput) statsResp {
	return statsResp{
		TotalTasks:            output.TotalTasks,
		CompletedTasks:        output.CompletedTasks,
		PendingTasks:          output.PendingTasks,
		OverdueTasks:          output.OverdueTasks,
		TotalEstimatedMinutes: output.TotalEstimatedMinutes,
	}
}

type recommendationsResp struct {
	Recommendations []string `json:"recommendations"`
}
