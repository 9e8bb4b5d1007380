package project

import (
	"github.com/gin-gonic/gin"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	projects := r.Group("/projects")
	projects.Use(authMW)
	{
		projects.POST("", handler.Create)
		projects.GET("/manager", handler.ListMine)
		projects.GET("/:id", handler.GetByID)
		projects.POST("/:id/assign", handler.Assign)

		projects.GET("", middleware.RoleMiddleware(auth.RoleHR), handler.ListAll)
	}
}
