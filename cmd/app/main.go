package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/DanielePL/Prometheus-Gym-Suite/docs"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/config"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/db"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/gym"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/logger"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/notify"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/server"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/sweep"

	"github.com/redis/go-redis/v9"
)

// @title Prometheus Gym Suite API
// @version 1.0
// @description Multi-tenant gym management backend: visits, activity status, coach aggregates, payments and dashboards.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting Prometheus Gym Suite")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	notifier := notify.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer notifier.Close()
	logger.Info("Notification service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifier.Start(ctx)

	memberRepo := member.NewRepository(database)
	alertService := alert.NewService(alert.NewRepository(database), gym.NewRepository(database), notifier)
	sweeper := sweep.New(memberRepo, alertService, cfg.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		logger.Fatalf("Failed to start status sweep: %v", err)
	}
	defer sweeper.Stop()
	logger.Infof("Status sweep scheduled: %s", cfg.SweepSchedule)

	srv := server.New(database, rdb, cfg, notifier)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
