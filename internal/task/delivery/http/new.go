package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/task"
	"smart-task-manager/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Preview(c *gin.Context)
	List(c *gin.Context)
	ListCompleted(c *gin.Context)
	ListOverdue(c *gin.Context)
	ListPending(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	SetStatus(c *gin.Context)
	Delete(c *gin.Context)
	Stats(c *gin.Context)
	Recommendations(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
