package http

import (
	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrEmptyInput:
		return response.NewHTTPError(400, "task text must not be empty")
	case task.ErrInvalidPriority:
		return response.NewHTTPError(400, "priority must be one of high, medium, low")
	case task.ErrInvalidStatus:
		return response.NewHTTPError(400, "status must be pending or completed")
	case task.ErrInvalidFilter:
		return response.NewHTTPError(400, "unsupported list filter")
	case task.ErrTaskNotFound:
		return response.NewHTTPError(404, "task not found")
	default:
		return response.NewHTTPError(500, "internal server error")
	}
}
