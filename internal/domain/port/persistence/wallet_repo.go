package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// WalletRepository reads and writes per-user balances
type WalletRepository interface {
	// Get returns the wallet of userID. A user without a record gets an empty
	// wallet with Exists=false, never an error.
	Get(ctx context.Context, userID string) (*entity.Wallet, error)

	// GetForUpdate is Get with a row lock held until the transaction ends
	GetForUpdate(ctx context.Context, userID string) (*entity.Wallet, error)

	// Save upserts coins and gift aggregates of the wallet
	Save(ctx context.Context, wallet *entity.Wallet) error

	// IncrementGiftReceived atomically bumps the receiver aggregates,
	// creating the wallet if needed
	IncrementGiftReceived(ctx context.Context, userID string, value int64) error
}
