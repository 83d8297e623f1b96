package client

import (
	"context"
	"fmt"
	"freshpack-backend/internal/config"
	"freshpack-backend/internal/model"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// InitDatabase opens the configured store, sizes the pool and migrates every
// registered entity.
func InitDatabase(ctx context.Context, cfg config.Database, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		return nil, err
	}

	log.Info("database ready", zap.String("dialect", cfg.Dialect), zap.Int("max_open_conns", cfg.MaxOpenConns))
	return db, nil
}

func newDialector(cfg config.Database) (gorm.Dialector, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	switch cfg.Dialect {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}
}

// liveUniqueIndexes are unique among rows that are not soft-deleted, so a
// deleted category, unit type or user frees its name for reuse.
var liveUniqueIndexes = []struct {
	name   string
	table  string
	column string
	where  string
}{
	{"idx_users_email_live", model.User{}.TableName(), "email", "deleted_at IS NULL"},
	{"idx_categories_name_live", model.Category{}.TableName(), "name", "deleted_at IS NULL"},
	{"idx_unit_types_abbreviation_live", model.UnitType{}.TableName(), "abbreviation", "deleted_at IS NULL"},
	// at most one default address per user
	{"idx_addresses_one_default", model.Address{}.TableName(), "user_id", "is_default = true AND deleted_at IS NULL"},
}

// Migrate creates or updates every registered table plus the indexes gorm
// tags cannot express.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.Entities()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// mysql has no partial indexes; there the service pre-checks and the
	// address transaction are the only guards
	switch db.Dialector.Name() {
	case "postgres", "sqlite":
	default:
		return nil
	}

	for _, idx := range liveUniqueIndexes {
		err := db.WithContext(ctx).Exec(
			fmt.Sprintf("CREATE UNIQUE INDEX IF NOT EXISTS %s ON ? (%s) WHERE %s", idx.name, idx.column, idx.where),
			clause.Table{Name: idx.table},
		).Error
		if err != nil {
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// Reset drops every registered table and migrates again.
func Reset(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Migrator().DropTable(model.Entities()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return Migrate(ctx, db)
}
