package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB is a migrated in-memory sqlite database for package tests
type TestDB struct {
	DB           *gorm.DB
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDB opens a private in-memory database and migrates the ledger schema.
// The connection is closed when the test finishes.
func NewTestDB(t testing.TB, coreLogger coreport.Logger, timeProvider coreport.TimeProvider) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
		NowFunc: func() time.Time {
			return timeProvider.Now().UTC()
		},
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	err = migration.NewMigrationManager(db, coreLogger, timeProvider).MigrateAll(context.Background())
	require.NoError(t, err, "failed to migrate test database")

	return &TestDB{
		DB:           db,
		Logger:       coreLogger,
		TimeProvider: timeProvider,
	}
}

// UnitOfWork returns a unit of work bound to the test database
func (d *TestDB) UnitOfWork() *UnitOfWork {
	return NewUnitOfWork(d.DB, d.Logger, d.TimeProvider)
}

// TruncateAll removes every ledger row, keeping the schema
func (d *TestDB) TruncateAll(t testing.TB) {
	t.Helper()

	for _, table := range []string{
		"wallets", "coin_transactions", "rate_limit_counters", "gifts",
		"gift_receipts", "chat_messages", "shop_items", "owned_items",
	} {
		require.NoError(t, d.DB.Exec("DELETE FROM "+table).Error, "truncate %s", table)
	}
}
