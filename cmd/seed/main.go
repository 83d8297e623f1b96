package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/logger"
	"freshpack-backend/internal/repository"
	"freshpack-backend/internal/service"

	"go.uber.org/zap"
)

func main() {
	force := flag.Bool("force", false, "drop every table before seeding")
	adminOnly := flag.Bool("admin-only", false, "only make sure the admin account exists")
	flag.Parse()

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

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	seeder := service.NewSeedService(db, repository.NewUserRepository(db), log)

	switch {
	case *adminOnly:
		admin, created, err := seeder.EnsureAdmin(ctx)
		if err != nil {
			log.Fatal("ensure admin failed", zap.Error(err))
		}
		log.Info("admin account ready", zap.String("email", admin.Email), zap.Bool("created", created))
	case *force:
		if _, err := seeder.ForceSync(ctx); err != nil {
			log.Fatal("force sync failed", zap.Error(err))
		}
	default:
		if _, err := seeder.Seed(ctx); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
	}
}
