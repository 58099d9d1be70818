package app

import (
	"database/sql"

	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/inactivity"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/rbac"
	"go-ems/internal/salary"
	"go-ems/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	inactivityRepo := inactivity.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	salaryService := salary.NewServiceWithOutbox(db, salaryRepo, outboxRepo)
	inactivityService := inactivity.NewService(db, inactivityRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)
	inactivityHandler := inactivity.NewHandler(inactivityService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(20), 40),
		middleware.Idempotency(rdb),
	)
	{
		department.RegisterRoutes(api, departmentHandler, rbacService, cfg.JWT.Secret)
		employee.RegisterRoutes(api, employeeHandler, rbacService, cfg.JWT.Secret)
		salary.RegisterRoutes(api, salaryHandler, rbacService, cfg.JWT.Secret)
		inactivity.RegisterRoutes(api, inactivityHandler, rbacService, cfg.JWT.Secret)
	}

	return nil
}
