package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-ems/internal/events"
	"go-ems/internal/mailer"
	"go-ems/internal/messaging/kafka/consumer"
	"go-ems/internal/salary"
	"go-ems/internal/shared/config"
	"go-ems/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
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

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka broker is required")
	}

	mail := mailer.New(cfg.Email)

	salaryRepo := salary.NewRepository(gormDB)
	salaryService := salary.NewService(sqlDB, salaryRepo)

	lifecycleReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeCreatedTopic,
		GroupID:        "go-ems-welcome-mailer",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer lifecycleReader.Close()

	payslipReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.SalaryPayslipRequestedTopic,
		GroupID:        "go-ems-payslip-builder",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer payslipReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, mail, logger)
	go consumer.ConsumeSalaryPayslipRequested(ctx, payslipReader, salaryService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
