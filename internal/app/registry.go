package app

import (
	"orgdir/internal/auth"
	"orgdir/internal/department"
	"orgdir/internal/employee"
	"orgdir/internal/integrity"
	"orgdir/internal/messaging/kafka"
	"orgdir/internal/section"
	"orgdir/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	sectionRepo := section.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	checker := integrity.NewChecker(gormDB)

	// --- Services ---
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(db, departmentRepo, checker, rdb)
	sectionService := section.NewService(db, sectionRepo, checker)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, checker, outboxRepo)
	taskService := task.NewService(db, taskRepo, checker)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandlerWithRedis(departmentService, rdb)
	sectionHandler := section.NewHandlerWithRedis(sectionService, rdb)
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	taskHandler := task.NewHandlerWithRedis(taskService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rdb)
		section.RegisterRoutes(api, sectionHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler, rdb)
		task.RegisterRoutes(api, taskHandler, rdb)
	}

	return nil
}
