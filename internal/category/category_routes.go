package category

import (
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	categories := r.Group("/categories")
	categories.Use(authMW)
	{
		categories.GET("", handler.GetAll)
		categories.GET("/main", handler.GetMain)
		categories.GET("/intern", handler.GetIntern)

		// writes are HR-only
		categories.POST("", middleware.RoleMiddleware(auth.RoleHR), handler.Create)
		categories.PUT("/:id", middleware.RoleMiddleware(auth.RoleHR), handler.Update)
		categories.DELETE("/:id", middleware.RoleMiddleware(auth.RoleHR), handler.Delete)
	}
}
