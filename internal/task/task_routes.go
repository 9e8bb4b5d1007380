package task

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	tasks := r.Group("/tasks")
	tasks.Use(authMW)
	{
		tasks.POST("", handler.Create)
		tasks.GET("/project/:id", handler.ListForProject)
		tasks.GET("/assigned", handler.ListAssigned)
		tasks.PUT("/:id/status", handler.UpdateStatus)
	}
}
