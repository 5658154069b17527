package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/reminder"
	"smart-task-manager/pkg/log"
)

// Handler is the public interface for the reminder HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for the reminder domain.
func New(l log.Logger, uc reminder.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
