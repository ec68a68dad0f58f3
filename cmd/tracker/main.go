package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"financetracker/internal/amqp"
	"financetracker/internal/analytics"
	"financetracker/internal/config"
	"financetracker/internal/log"
	"financetracker/internal/notify"
	"financetracker/internal/repository"
	"financetracker/internal/services"
	"financetracker/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Component: log.ComponentApp,
	})
	log.SetDefault(logger)

	logger.Info("Starting tracker")

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	// Pick the store per configured backend
	var store storage.Store
	switch cfg.DataBackend {
	case "sqlite":
		sqliteStore, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize SQLite store", log.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer sqliteStore.Close()
		store = sqliteStore
	default:
		store = storage.NewMemoryStore()
	}

	repo := repository.New(store)
	processor := services.NewRecurringProcessor(repo)

	broadcaster := notify.NewBroadcasterWithTTL(cfg.NotificationDuration)
	defer broadcaster.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional AMQP relay so external consumers see tracker notifications
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without relay", log.FieldError, err)
			amqpClient = nil
		} else {
			defer amqpClient.Close()
			logger.Info("AMQP relay initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	} else {
		logger.Info("AMQP disabled, notifications stay in process")
	}

	relay := amqp.NewRelay(ctx, amqpClient, broadcaster)
	defer relay.Stop()

	logger.Info("Recurring transaction processor configured",
		"interval", cfg.RecurringInterval,
		log.FieldBackend, cfg.DataBackend)

	alerter := services.NewAlerter(broadcaster)

	runCycle := func(now time.Time) {
		created, err := processor.ProcessDue(ctx, now)
		if err != nil {
			logger.Error("Recurring processing failed", log.FieldError, err)
		}
		if len(created) > 0 {
			logger.Info("Recurring processing complete", log.FieldCount, len(created))
			broadcaster.RecurringProcessed(len(created))
		}

		stats := analytics.Dashboard(
			repo.Transactions(ctx),
			repo.Budgets(ctx),
			repo.SavingsGoals(ctx),
			now,
		)
		alerter.CheckBudgets(stats)
		alerter.CheckGoals(stats)
	}

	logger.Info("Running initial recurring transaction processing...")
	runCycle(time.Now())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ticker := time.NewTicker(cfg.RecurringInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case now := <-ticker.C:
				runCycle(now)
			}
		}
	})

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-gctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down tracker...")
	cancel()

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Warn("Worker exited with error", log.FieldError, err)
	}
	logger.Info("Tracker shutdown complete")
}
