package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// AdjustResult is the outcome of a committed topup or spend
type AdjustResult struct {
	Amount        int64
	NewBalance    int64
	TransactionID string
}

// WalletUseCase defines the wallet operations exposed over HTTP
type WalletUseCase interface {
	// GetBalance returns the caller's wallet (zero coins when none exists)
	GetBalance(ctx context.Context, userID string) (*entity.Wallet, error)

	// Topup credits amount coins, subject to the daily topup quota and the balance cap
	Topup(ctx context.Context, userID string, amount int64, metadata map[string]any) (*AdjustResult, error)

	// Spend debits amount coins, subject to the daily spend quota
	Spend(ctx context.Context, userID string, amount int64, metadata map[string]any) (*AdjustResult, error)

	// AdjustCoins applies a signed delta with bounds checks and logs it as txType
	AdjustCoins(ctx context.Context, userID string, delta int64, txType entity.TransactionType, metadata map[string]any) (*AdjustResult, error)

	// ListTransactions returns the caller's ledger newest first
	ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.CoinTransaction, error)
}
