package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sicservitium/internal/employee"
	"sicservitium/internal/messaging/kafka"
	"sicservitium/internal/messaging/kafka/producer"
	"sicservitium/internal/shared/connection"
	"sicservitium/internal/vacation"

	"go.uber.org/zap"
)

// RunWorker relays outbox events to Kafka and runs the daily vacation
// reminder sweep.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := kafka.EnsureOutboxTable(sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	employeeRepo := employee.NewRepository(gormDB)
	vacationRepo := vacation.NewRepository(gormDB)
	notifyLedger := vacation.NewRedisLedger(redisClient)
	vacationService := vacation.NewService(vacationRepo, employeeRepo, notifyLedger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	go runReminderSweep(ctx, vacationService, logger, time.Hour)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}

func runReminderSweep(ctx context.Context, svc vacation.Service, logger *zap.Logger, interval time.Duration) {
	log := logger.Named("vacation.reminders")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep := func() {
		reminders, err := svc.CheckReminders(ctx)
		if err != nil {
			log.Error("reminder sweep failed", zap.Error(err))
			return
		}
		for _, r := range reminders {
			log.Info("vacation reminder",
				zap.String("vacation_id", r.VacationID),
				zap.String("employee_name", r.EmployeeName),
				zap.Int("days_until_start", r.DaysUntilStart),
			)
		}
	}

	sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
