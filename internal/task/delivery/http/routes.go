package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Endpoints that run the parser are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.POST("/extract", mw.RateLimit(), h.Extract)
		tasks.POST("/suggestions", mw.RateLimit(), h.Suggest)
		tasks.POST("/quick", mw.RateLimit(), h.CreateFromText)

		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/assignees", h.Assignees)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/complete", h.ToggleComplete)
		tasks.PATCH("/:id/subtasks", h.UpdateSubtask)
	}
}
