package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc) {
	hr := r.Group("/hr/employees")
	hr.Use(authMW)
	hr.Use(middleware.RoleMiddleware(auth.RoleHR))
	{
		hr.GET("", handler.GetAll)
		hr.GET("/options", handler.GetOptions)
		hr.GET("/:id", handler.GetByID)
		hr.POST("", handler.Create)
		hr.PUT("/:id", handler.Update)
		hr.PUT("/:id/password", handler.ResetPassword)
		hr.DELETE("/:id", handler.Delete)
	}

	profile := r.Group("/employee")
	profile.Use(authMW)
	{
		profile.GET("/profile", handler.GetProfile)
		profile.PUT("/profile", handler.UpdateProfile)
	}
}
