package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/logger"
	"freshpack-backend/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := client.InitDatabase(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	braintree := client.NewBraintreeClient(&cfg.BrainTree)
	if braintree == nil {
		log.Info("braintree not configured, card orders stay pending")
	}

	services := server.NewServices(db, cfg.JWT, cfg.Razorpay.Timeout, server.Clients{
		Razorpay:  client.NewRazorpayClient(&cfg.Razorpay),
		Braintree: braintree,
		Mail:      client.NewMailClient(&cfg.Postmark),
	}, log)

	if cfg.SeedOnStartup {
		result, err := services.Seed.Seed(ctx)
		if err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("seed finished", zap.Bool("skipped", result.Skipped), zap.Int("packs", result.Packs))
	}

	srv := server.NewServer(services, log, server.Options{
		MaintenanceEnabled: cfg.MaintenanceEnabled,
	})

	addr := cfg.HTTP.Address()
	log.Info("starting HTTP server", zap.String("addr", addr), zap.String("env", cfg.Environment.Name))
	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("signal received, starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
