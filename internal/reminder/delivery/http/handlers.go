package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/reminder"
	"smart-task-manager/pkg/response"
)

type scheduleReq struct {
	Recipient     string `json:"recipient"      binding:"omitempty,email"`
	RecipientName string `json:"recipient_name"`
	LeadMinutes   int    `json:"lead_minutes"   binding:"omitempty,min=1"`
	Message       string `json:"message"`
}

type scheduleResp struct {
	TaskID        int64             `json:"task_id"`
	Recipient     string            `json:"recipient"`
	SendAt        response.DateTime `json:"send_at"`
	SentNow       bool              `json:"sent_now"`
	CalendarEvent string            `json:"calendar_event,omitempty"`
}

// Schedule godoc
// @Summary     Schedule an email reminder
// @Description Arranges a reminder email ahead of the task's due date. A send time already past triggers an immediate send.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       id   path int         true  "Task ID"
// @Param       body body scheduleReq false "Recipient, lead-time and message overrides"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     502 {object} response.Resp "Email delivery failed"
// @Router      /api/v1/tasks/{id}/reminder [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, response.NewHTTPError(400, "id must be a positive integer"))
		return
	}

	var req scheduleReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, response.NewHTTPError(400, "invalid request body"))
			return
		}
	}

	output, err := h.uc.Schedule(ctx, reminder.ScheduleInput{
		TaskID:        id,
		Recipient:     req.Recipient,
		RecipientName: req.RecipientName,
		LeadMinutes:   req.LeadMinutes,
		Message:       req.Message,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, scheduleResp{
		TaskID:        output.TaskID,
		Recipient:     output.Recipient,
		SendAt:        response.DateTime(output.SendAt),
		SentNow:       output.SentNow,
		CalendarEvent: output.CalendarEvent,
	})
}

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case reminder.ErrTaskNotFound:
		return response.NewHTTPError(404, "task not found")
	case reminder.ErrTaskCompleted:
		return response.NewHTTPError(400, "task is already completed")
	case reminder.ErrNoRecipient:
		return response.NewHTTPError(400, "no recipient given and no default configured")
	case reminder.ErrSendFailed:
		return response.NewHTTPError(502, "reminder email could not be delivered")
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
