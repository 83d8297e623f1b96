package testutil

import (
	"context"
	"testing"

	"freshpack-backend/internal/client"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a private in-memory sqlite database with the full schema. The
// pool is pinned to one connection so the memory database survives for the
// whole test; code under test must therefore use the tx it is handed inside
// a transaction.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, client.Migrate(context.Background(), db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
