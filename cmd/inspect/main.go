package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"freshpack-backend/internal/client"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/logger"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const samplePacks = 5

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

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	if err := printCounts(ctx, w, db); err != nil {
		log.Fatal("count tables failed", zap.Error(err))
	}
	if err := printPacks(ctx, w, db); err != nil {
		log.Fatal("list packs failed", zap.Error(err))
	}
	_ = w.Flush()
}

func printCounts(ctx context.Context, w *tabwriter.Writer, db *gorm.DB) error {
	fmt.Fprintln(w, "TABLE\tROWS")
	for _, table := range model.TableNames() {
		var count int64
		if err := db.WithContext(ctx).Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		fmt.Fprintf(w, "%s\t%d\n", table, count)
	}
	fmt.Fprintln(w)
	return nil
}

func printPacks(ctx context.Context, w *tabwriter.Writer, db *gorm.DB) error {
	packRepo := repository.NewPackRepository(db)

	packs, err := packRepo.List(ctx, repository.PackFilter{})
	if err != nil {
		return err
	}
	if len(packs) > samplePacks {
		packs = packs[:samplePacks]
	}

	for _, pack := range packs {
		fmt.Fprintf(w, "PACK %d\t%s\tfinal=%s\tactive=%t\n", pack.ID, pack.Name, pack.FinalPrice.StringFixed(2), pack.IsActive)

		items, err := packRepo.GetProducts(ctx, db, pack.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Fprintf(w, "  %s\tqty=%d\tunit=%s\n", productName(item), item.Quantity, item.UnitPrice.StringFixed(2))
		}
	}
	return nil
}

func productName(item *model.PackProduct) string {
	if item.Product == nil {
		return fmt.Sprintf("product#%d", item.ProductID)
	}
	return item.Product.Name
}
