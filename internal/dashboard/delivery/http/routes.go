package http

import (
	"github.com/gin-gonic/gin"

	"github.com/blc10/research-assistant/internal/middleware"
)

// RegisterRoutes maps the dashboard API under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RequestID())

	rg.GET("/overview", h.Overview)

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.POST("/:id/done", h.CompleteTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	papers := rg.Group("/papers")
	{
		papers.GET("", h.ListPapers)
		papers.POST("/:id/read", h.ReadPaper)
	}

	goals := rg.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.POST("", h.CreateGoal)
		goals.POST("/:id/progress", h.UpdateGoalProgress)
	}

	settings := rg.Group("/settings")
	{
		settings.GET("", h.GetSettings)
		settings.PUT("", h.UpdateSettings)
	}
}
