package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// CoinTransactionRepository is the append-only transaction log
type CoinTransactionRepository interface {
	// Append writes a new entry. Entries are never updated.
	Append(ctx context.Context, tx *entity.CoinTransaction) error

	// ListByUser returns entries of userID newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.CoinTransaction, error)
}
