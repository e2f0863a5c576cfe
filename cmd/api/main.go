package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kartiknayak1216/lenso-backend-service/internal/api/handlers"
	"github.com/kartiknayak1216/lenso-backend-service/internal/api/router"
	"github.com/kartiknayak1216/lenso-backend-service/internal/config"
	"github.com/kartiknayak1216/lenso-backend-service/internal/db"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/logger"
	"github.com/kartiknayak1216/lenso-backend-service/internal/pkg/validator"
	"github.com/kartiknayak1216/lenso-backend-service/internal/repository/sqlite"
	"github.com/kartiknayak1216/lenso-backend-service/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	database, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Repositories
	timeout := cfg.Database.QueryTimeout
	userRepo := sqlite.NewUserRepository(database, timeout)
	creditRepo := sqlite.NewCreditRepository(database, timeout)
	subscriptionRepo := sqlite.NewSubscriptionRepository(database, timeout)
	billingRepo := sqlite.NewBillingRepository(database, timeout)

	// Services
	creditService := services.NewCreditService(userRepo, creditRepo, log)
	accountService := services.NewAccountService(userRepo, log)
	reportService := services.NewReportService(userRepo, creditRepo, subscriptionRepo, billingRepo, log)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:  handlers.NewHealthHandler(database, log),
		Credit:  handlers.NewCreditHandler(creditService, log, val),
		User:    handlers.NewUserHandler(accountService, log, val),
		Report:  handlers.NewReportHandler(reportService, log),
		Billing: handlers.NewBillingHandler(log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server is running on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}
