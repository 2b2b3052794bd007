package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	"gorm.io/gorm"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) (*gorm.DB, context.Context) {
	t.Helper()
	testDB := database.NewTestDB(t, logger.NewNoopLogger(), timeprovider.NewFixedTimeProvider(baseTime))
	return testDB.DB, context.Background()
}
