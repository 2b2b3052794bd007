package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestUnitOfWork(t *testing.T) *UnitOfWork {
	t.Helper()
	testDB := NewTestDB(t, logger.NewNoopLogger(), timeprovider.NewFixedTimeProvider(testNow))
	return testDB.UnitOfWork().WithRetryConfig(RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	})
}

func creditInTx(t *testing.T, uow *UnitOfWork, ctx context.Context, userID string, amount int64) error {
	t.Helper()
	wallets := uow.GetWalletRepository(ctx)
	wallet, err := wallets.GetForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if err := wallet.Credit(amount, entity.DefaultMaxCoins, testNow); err != nil {
		return err
	}
	if err := wallets.Save(ctx, wallet); err != nil {
		return err
	}
	return uow.GetCoinTransactionRepository(ctx).Append(ctx,
		entity.NewCoinTransaction("tx-"+userID, userID, entity.TransactionTopup, amount, nil, testNow))
}

func TestUnitOfWork_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits every write", func(t *testing.T) {
		uow := newTestUnitOfWork(t)

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			return creditInTx(t, uow, txCtx, "uid-1", 100)
		})

		require.NoError(t, err)
		wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), wallet.Coins())
		list, err := uow.GetCoinTransactionRepository(ctx).ListByUser(ctx, "uid-1", 10, 0)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("business error rolls back every write", func(t *testing.T) {
		uow := newTestUnitOfWork(t)

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			if err := creditInTx(t, uow, txCtx, "uid-1", 100); err != nil {
				return err
			}
			return errs.ErrGiftNotFound
		})

		assert.True(t, errors.Is(err, errs.ErrGiftNotFound))
		wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.False(t, wallet.Exists)
		list, err := uow.GetCoinTransactionRepository(ctx).ListByUser(ctx, "uid-1", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("panic rolls back and propagates", func(t *testing.T) {
		uow := newTestUnitOfWork(t)

		assert.Panics(t, func() {
			_ = uow.Execute(ctx, func(txCtx context.Context) error {
				_ = creditInTx(t, uow, txCtx, "uid-1", 100)
				panic("boom")
			})
		})

		wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.False(t, wallet.Exists)
	})

	t.Run("nested execute joins the outer transaction", func(t *testing.T) {
		uow := newTestUnitOfWork(t)

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			if err := uow.Execute(txCtx, func(inner context.Context) error {
				return creditInTx(t, uow, inner, "uid-1", 100)
			}); err != nil {
				return err
			}
			return errs.ErrInsufficientFunds
		})

		assert.Error(t, err)
		wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.False(t, wallet.Exists)
	})

	t.Run("conflicts are replayed", func(t *testing.T) {
		uow := newTestUnitOfWork(t)
		calls := 0

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			calls++
			if calls == 1 {
				return errs.ErrTransactionConflict
			}
			return creditInTx(t, uow, txCtx, "uid-1", 40)
		})

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
		require.NoError(t, err)
		assert.Equal(t, int64(40), wallet.Coins())
	})

	t.Run("client errors are not replayed", func(t *testing.T) {
		uow := newTestUnitOfWork(t)
		calls := 0

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			calls++
			return errs.ErrCannotGiftSelf
		})

		assert.True(t, errors.Is(err, errs.ErrCannotGiftSelf))
		assert.Equal(t, 1, calls)
	})

	t.Run("exhausted retries surface a conflict", func(t *testing.T) {
		uow := newTestUnitOfWork(t)
		calls := 0

		err := uow.Execute(ctx, func(txCtx context.Context) error {
			calls++
			return errs.ErrTransactionConflict
		})

		assert.True(t, errors.Is(err, errs.ErrTransactionConflict))
		assert.Equal(t, 3, calls)
	})
}

func debitInTx(uow *UnitOfWork, ctx context.Context, userID, txID string, amount int64) error {
	wallets := uow.GetWalletRepository(ctx)
	wallet, err := wallets.GetForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	if err := wallet.Debit(amount, testNow); err != nil {
		return err
	}
	if err := wallets.Save(ctx, wallet); err != nil {
		return err
	}
	return uow.GetCoinTransactionRepository(ctx).Append(ctx,
		entity.NewCoinTransaction(txID, userID, entity.TransactionSpend, -amount, nil, testNow))
}

func TestUnitOfWork_ConcurrentDebits(t *testing.T) {
	// Arrange
	ctx := context.Background()
	uow := newTestUnitOfWork(t)
	require.NoError(t, uow.Execute(ctx, func(txCtx context.Context) error {
		return creditInTx(t, uow, txCtx, "uid-1", 50)
	}))

	const attempts = 10
	results := make(chan error, attempts)
	var wg sync.WaitGroup

	// Act
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			results <- uow.Execute(ctx, func(txCtx context.Context) error {
				return debitInTx(uow, txCtx, "uid-1", fmt.Sprintf("spend-%d", n), 10)
			})
		}(i)
	}
	wg.Wait()
	close(results)

	// Assert
	var succeeded, insufficient int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrInsufficientFunds):
			insufficient++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 5, insufficient)

	wallet, err := uow.GetWalletRepository(ctx).Get(ctx, "uid-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), wallet.Coins())
	list, err := uow.GetCoinTransactionRepository(ctx).ListByUser(ctx, "uid-1", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 6)
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	uow := newTestUnitOfWork(t)

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))
}
