package app

import (
	"database/sql"

	"sicservitium/internal/employee"
	"sicservitium/internal/messaging/kafka"
	"sicservitium/internal/middleware"
	"sicservitium/internal/punch"
	"sicservitium/internal/transfer"
	"sicservitium/internal/vacation"

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
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	vacationRepo := vacation.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	notifyLedger := vacation.NewRedisLedger(rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb)
	vacationService := vacation.NewService(vacationRepo, employeeRepo, notifyLedger)
	transferService := transfer.NewService(employeeRepo, outboxRepo, rdb)
	punchService := punch.NewService(employeeRepo)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	vacationHandler := vacation.NewHandler(vacationService)
	transferHandler := transfer.NewHandler(transferService)
	punchHandler := punch.NewHandler(punchService)

	// --- Middleware ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		transfer.RegisterRoutes(api, transferHandler)
		vacation.RegisterRoutes(api, vacationHandler)
		punch.RegisterRoutes(api, punchHandler)
	}

	return nil
}
