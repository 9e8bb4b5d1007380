package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/auth"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/category"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/employee"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/leave"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/messaging/kafka"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/middleware"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/notification"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/project"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/shared/counter"
	"github.com/AdityaPrasad7/EmployeeManagement-System/internal/task"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	categoryRepo := category.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	projectRepo := project.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo, categoryRepo)
	categoryService := category.NewService(categoryRepo)
	employeeService := employee.NewServiceWithOutbox(gormDB, employeeRepo, categoryRepo, counterRepo, outboxRepo, rdb)
	leaveService := leave.NewServiceWithOutbox(gormDB, leaveRepo, outboxRepo)
	notificationService := notification.NewService(notificationRepo)
	projectService := project.NewService(projectRepo)
	taskService := task.NewService(taskRepo, projectRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	categoryHandler := category.NewHandler(categoryService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	notificationHandler := notification.NewHandler(notificationService)
	projectHandler := project.NewHandler(projectService)
	taskHandler := task.NewHandler(taskService)

	// Token parsing happens once here; role checks downstream trust the
	// resolved subject, never the raw claim.
	authMW := middleware.AuthMiddleware(authService)

	// --- Routes Registration ---
	api := router.Group("")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		category.RegisterRoutes(api, categoryHandler, authMW)
		employee.RegisterRoutes(api, employeeHandler, authMW)
		leave.RegisterRoutes(api, leaveHandler, authMW, rdb)
		notification.RegisterRoutes(api, notificationHandler, authMW)
		project.RegisterRoutes(api, projectHandler, authMW)
		task.RegisterRoutes(api, taskHandler, authMW)
	}

	return nil
}
