package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgetwise/internal/advisor"
	"budgetwise/internal/config"
	"budgetwise/internal/database"
	"budgetwise/internal/logger"
	"budgetwise/internal/router"
	"budgetwise/internal/services"
)

// @title           BudgetWise API
// @version         1.0
// @description     BudgetWise tracks budget periods, expenses and recurring subscriptions, forecasts where a period will end up and archives finished periods with an achievement.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The advice cache and generator are optional; nil interfaces disable them.
	var cache advisor.Cache
	if appConfig.RedisURL != "" {
		client, err := advisor.NewRedisClient(ctx, appConfig.RedisURL)
		if err != nil {
			log.Warnw("advice cache disabled", "error", err)
		} else {
			defer client.Close()
			cache = advisor.NewRedisCache(client, appConfig.AdviceCacheTTL)
		}
	}

	var generator advisor.Generator
	if appConfig.GeminiAPIKey != "" {
		generator = advisor.NewGeminiGenerator(appConfig.GeminiAPIKey, appConfig.GeminiModel)
	} else {
		log.Info("GEMINI_API_KEY not set, advice will be reported unavailable")
	}

	db := dbManager.DB()
	engine, err := router.New(router.Services{
		Budget:       services.NewBudgetService(db),
		Expense:      services.NewExpenseService(db),
		Subscription: services.NewSubscriptionService(db),
		Advisor:      services.NewAdvisorService(db, generator, cache, appConfig.AdviceTimeout),
		Audit:        services.NewAuditService(db),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting BudgetWise server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
