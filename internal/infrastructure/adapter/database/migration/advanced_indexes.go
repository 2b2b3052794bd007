package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	statements := []struct {
		name string
		sql  string
	}{
		{
			// Ledger rows arrive in time order, so BRIN stays tiny
			name: "idx_coin_transactions_created_at_brin",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_transactions_created_at_brin
				ON coin_transactions USING BRIN (created_at)
				WITH (pages_per_range = 32)`,
		},
		{
			name: "idx_coin_transactions_metadata_kind",
			sql: `CREATE INDEX IF NOT EXISTS idx_coin_transactions_metadata_kind
				ON coin_transactions ((metadata->>'kind'))
				WHERE metadata->>'kind' IS NOT NULL`,
		},
		{
			name: "idx_shop_items_active_price",
			sql: `CREATE INDEX IF NOT EXISTS idx_shop_items_active_price
				ON shop_items (price, id) WHERE active`,
		},
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt.sql).Error; err != nil {
			m.logger.Error("Failed to create advanced index", map[string]any{
				"index": stmt.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are
// logged and ignored.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Wallet rows are updated in place on every adjustment
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE wallets SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for wallets table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE rate_limit_counters SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for rate_limit_counters table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE coin_transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
