package persistence

import (
	"context"
)

// UnitOfWork coordinates one atomic transaction across the ledger repositories
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction and commits it when fn returns nil.
	// A transaction that loses a serialization race is retried, so fn must not
	// have side effects outside the repositories it obtains from txCtx.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// GetWalletRepository returns a wallet repository bound to the current transaction
	GetWalletRepository(ctx context.Context) WalletRepository

	// GetCoinTransactionRepository returns a transaction log repository bound to the current transaction
	GetCoinTransactionRepository(ctx context.Context) CoinTransactionRepository

	// GetRateLimitRepository returns a rate limit counter repository bound to the current transaction
	GetRateLimitRepository(ctx context.Context) RateLimitRepository

	// GetGiftRepository returns a gift catalog and receipt repository bound to the current transaction
	GetGiftRepository(ctx context.Context) GiftRepository

	// GetMessageRepository returns a chat message repository bound to the current transaction
	GetMessageRepository(ctx context.Context) MessageRepository

	// GetShopRepository returns a shop repository bound to the current transaction
	GetShopRepository(ctx context.Context) ShopRepository
}
