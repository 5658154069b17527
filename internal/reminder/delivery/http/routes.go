package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/tasks/:id/reminder", mw.RateLimit(), h.Schedule)
}
