package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.RateLimit(), h.Create)
		tasks.POST("/preview", mw.RateLimit(), h.Preview)
		tasks.GET("", h.List)
		tasks.GET("/completed", h.ListCompleted)
		tasks.GET("/overdue", h.ListOverdue)
		tasks.GET("/pending", h.ListPending)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id/status", h.SetStatus)
		tasks.DELETE("/:id", h.Delete)
	}

	analytics := rg.Group("/analytics")
	{
		analytics.GET("/stats", h.Stats)
		analytics.GET("/recommendations", h.Recommendations)
	}
}
