package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/model"
	"smart-task-manager/pkg/response"
)

// Create godoc
// @Summary     Create a task from free text
// @Description Interprets the text (category, priority, due date, duration, tags, suggestions) and persists the task. Explicit fields override inference.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text plus optional overrides"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Preview godoc
// @Summary     Preview task interpretation
// @Description Runs the same interpretation as task creation without persisting anything.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task text plus optional overrides"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDraftResp(output))
}

// List godoc
// @Summary     List active tasks
// @Description Returns tasks that are not completed, ordered by due date ascending. Supports priority/category/due-window filters.
// @Tags        Task
// @Produce     json
// @Param       priority query string false "Filter by priority (high/medium/low)"
// @Param       category query string false "Filter by category"
// @Param       due      query string false "Due window (today/week/month/overdue)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListCompleted godoc
// @Summary     List completed tasks
// @Description Returns completed tasks, newest created first.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/completed [GET]
func (h *handler) ListCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCompleted(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCompleted: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListOverdue godoc
// @Summary     List overdue tasks
// @Description Returns tasks past their due date and not completed.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/overdue [GET]
func (h *handler) ListOverdue(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListOverdue(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOverdue: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListPending godoc
// @Summary     List upcoming pending tasks
// @Description Returns pending tasks whose due date is now or later.
// @Tags        Task
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/pending [GET]
func (h *handler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListPendingFuture(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPendingFuture: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its numeric ID.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Replaces the full mutable attribute set of a task. Status is not touched; use the status endpoint.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Full task attributes"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// SetStatus godoc
// @Summary     Change task status
// @Description Sets the task status to pending or completed. Idempotent.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path int          true "Task ID"
// @Param       body body setStatusReq true "New status"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processSetStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.SetStatus(ctx, id, model.TaskStatus(req.Status)); err != nil {
		h.l.Errorf(ctx, "uc.SetStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task.
// @Tags        Task
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Stats godoc
// @Summary     Task statistics
// @Description Recomputes aggregate task counters on demand.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Recommendations godoc
// @Summary     Workload recommendations
// @Description Returns rule-based advisory strings about the current workload.
// @Tags        Analytics
// @Produce     json
// @Success     200 {object} recommendationsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/analytics/recommendations [GET]
func (h *handler) Recommendations(c *gin.Context) {
	ctx := c.Request.Context()

	recs, err := h.uc.Recommendations(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommendations: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, recommendationsResp{Recommendations: recs})
}
