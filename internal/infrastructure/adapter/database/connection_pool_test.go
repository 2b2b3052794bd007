package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionPoolMonitor(t *testing.T) {
	log := logger.NewNoopLogger()
	testDB := NewTestDB(t, log, timeprovider.NewFixedTimeProvider(testNow))

	t.Run("empty before the first collection", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(testDB.DB, log)

		assert.Equal(t, ConnectionPoolMetrics{}, monitor.GetMetrics())
	})

	t.Run("start samples the pool", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(testDB.DB, log)
		require.NoError(t, monitor.Start(time.Minute))
		defer monitor.Stop()

		metrics := monitor.GetMetrics()
		assert.Equal(t, 1, metrics.MaxOpenConnections)
		assert.Equal(t, 0, metrics.InUse)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		monitor := NewConnectionPoolMonitor(testDB.DB, log)
		require.NoError(t, monitor.Start(time.Minute))

		monitor.Stop()
		monitor.Stop()
	})

	t.Run("health check pings", func(t *testing.T) {
		assert.NoError(t, NewHealthChecker(testDB.DB, log, time.Second).Check(context.Background()))
	})
}
