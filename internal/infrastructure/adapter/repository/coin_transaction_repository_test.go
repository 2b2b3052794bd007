package repository_test

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinTransactionRepository(t *testing.T) {
	db, ctx := setupDB(t)
	repo := repository.NewCoinTransactionRepository(db, logger.NewNoopLogger())

	entries := []*entity.CoinTransaction{
		entity.NewCoinTransaction("t-1", "uid-1", entity.TransactionTopup, 100, nil, baseTime),
		entity.NewCoinTransaction("t-2", "uid-1", entity.TransactionSpend, -30, map[string]any{"kind": "gift", "giftId": "tra-sua"}, baseTime.Add(time.Minute)),
		entity.NewCoinTransaction("t-3", "uid-1", entity.TransactionPurchase, -20, map[string]any{"itemId": "frame"}, baseTime.Add(2*time.Minute)),
		entity.NewCoinTransaction("t-4", "uid-2", entity.TransactionTopup, 5, nil, baseTime),
	}
	for _, e := range entries {
		require.NoError(t, repo.Append(ctx, e))
	}

	t.Run("newest first for one user", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, "uid-1", 50, 0)

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "t-3", list[0].ID)
		assert.Equal(t, "t-2", list[1].ID)
		assert.Equal(t, "t-1", list[2].ID)
		assert.Equal(t, int64(-30), list[1].Amount)
		assert.Equal(t, entity.TransactionSpend, list[1].Type)
		assert.Equal(t, "tra-sua", list[1].Metadata["giftId"])
		assert.NotNil(t, list[2].Metadata)
	})

	t.Run("limit and offset", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, "uid-1", 1, 1)

		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "t-2", list[0].ID)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		err := repo.Append(ctx, entity.NewCoinTransaction("t-1", "uid-1", entity.TransactionTopup, 1, nil, baseTime))

		assert.Error(t, err)
	})

	t.Run("same timestamp keeps insertion order", func(t *testing.T) {
		at := baseTime.Add(time.Hour)
		for _, id := range []string{"z-first", "a-second", "m-third"} {
			require.NoError(t, repo.Append(ctx, entity.NewCoinTransaction(id, "uid-3", entity.TransactionTopup, 1, nil, at)))
		}

		list, err := repo.ListByUser(ctx, "uid-3", 50, 0)

		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "m-third", list[0].ID)
		assert.Equal(t, "a-second", list[1].ID)
		assert.Equal(t, "z-first", list[2].ID)
	})
}
