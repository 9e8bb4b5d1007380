package leave

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMW gin.HandlerFunc, rdb *redis.Client) {
	leaves := r.Group("/leave")
	leaves.Use(authMW)
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Submit)
		leaves.GET("", handler.ListMine)
		leaves.GET("/balance", handler.Balance)
		leaves.PUT("/:id/dates", handler.UpdateDates)
		leaves.DELETE("/:id", handler.Cancel)

		hr := leaves.Group("")
		hr.Use(middleware.RoleMiddleware(auth.RoleHR))
		{
			hr.GET("/all", handler.ListAll)
			hr.GET("/employee/:employeeId", handler.ListByEmployee)
			hr.PUT("/:id/approve", handler.Approve)
			hr.PUT("/:id/reject", handler.Reject)
		}
	}
}
