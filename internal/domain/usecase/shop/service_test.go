package shop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/coin-ledger/mocks/port/persistence"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type shopMocks struct {
	uow     *persistence.MockUnitOfWork
	shop    *persistence.MockShopRepository
	wallets *persistence.MockWalletRepository
	ledger  *persistence.MockCoinTransactionRepository
}

func newTestService(t *testing.T, policy Policy) (*Service, *shopMocks) {
	m := &shopMocks{
		uow:     new(persistence.MockUnitOfWork),
		shop:    new(persistence.MockShopRepository),
		wallets: new(persistence.MockWalletRepository),
		ledger:  new(persistence.MockCoinTransactionRepository),
	}
	mockTime := new(core.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)
	ids := new(core.MockIDGenerator)
	ids.On("NewID").Return("tx-1")
	logger := new(core.MockLogger)
	logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	m.uow.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()
	m.uow.On("GetShopRepository", mock.Anything).Return(m.shop).Maybe()
	m.uow.On("GetWalletRepository", mock.Anything).Return(m.wallets).Maybe()
	m.uow.On("GetCoinTransactionRepository", mock.Anything).Return(m.ledger).Maybe()

	return NewShopService(m.uow, ids, mockTime, logger, policy), m
}

func frame() *entity.ShopItem {
	return &entity.ShopItem{ID: "frame", Name: "Gold frame", Description: "Shiny", Price: 20, Active: true}
}

func TestService_Purchase(t *testing.T) {
	t.Run("should debit, log and grant", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t, Policy{AllowRepurchase: true})
		m.shop.On("GetItem", mock.Anything, "frame").Return(frame(), nil)
		m.wallets.On("GetForUpdate", mock.Anything, "uid-1").
			Return(entity.RestoreWallet("uid-1", 50, 0, 0, 0, fixedTime), nil)
		m.wallets.On("Save", mock.Anything, mock.Anything).Return(nil)
		m.ledger.On("Append", mock.Anything, mock.MatchedBy(func(tx *entity.CoinTransaction) bool {
			return tx.Type == entity.TransactionPurchase && tx.Amount == -20 && tx.Metadata["itemId"] == "frame"
		})).Return(nil)
		m.shop.On("UpsertGrant", mock.Anything, mock.MatchedBy(func(g *entity.OwnedItem) bool {
			return g.UserID == "uid-1" && g.ItemID == "frame" && g.Price == 20 && g.GrantedAt.Equal(fixedTime)
		})).Return(nil)

		// Act
		result, err := service.Purchase(ctx, "uid-1", "frame")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "frame", result.ItemID)
		assert.Equal(t, "Gold frame", result.ItemName)
		assert.Equal(t, int64(20), result.Price)
		assert.Equal(t, int64(30), result.NewBalance)
		m.shop.AssertNotCalled(t, "FindGrant", mock.Anything, mock.Anything, mock.Anything)
		m.shop.AssertExpectations(t)
		m.ledger.AssertExpectations(t)
	})

	t.Run("should fail with insufficient funds and grant nothing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t, Policy{AllowRepurchase: true})
		m.shop.On("GetItem", mock.Anything, "frame").Return(frame(), nil)
		m.wallets.On("GetForUpdate", mock.Anything, "uid-1").
			Return(entity.RestoreWallet("uid-1", 10, 0, 0, 0, fixedTime), nil)

		// Act
		_, err := service.Purchase(ctx, "uid-1", "frame")

		// Assert
		assert.True(t, errs.IsInsufficientFundsError(err))
		m.shop.AssertNotCalled(t, "UpsertGrant", mock.Anything, mock.Anything)
		m.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("should reject inactive items", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t, Policy{AllowRepurchase: true})
		item := frame()
		item.Active = false
		m.shop.On("GetItem", mock.Anything, "frame").Return(item, nil)

		// Act
		_, err := service.Purchase(ctx, "uid-1", "frame")

		// Assert
		assert.ErrorIs(t, err, errs.ErrItemInactive)
		m.wallets.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("should pass through unknown items", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t, Policy{AllowRepurchase: true})
		m.shop.On("GetItem", mock.Anything, "ghost").Return(nil, errs.ErrItemNotFound)

		// Act
		_, err := service.Purchase(ctx, "uid-1", "ghost")

		// Assert
		assert.ErrorIs(t, err, errs.ErrItemNotFound)
	})

	t.Run("should refuse repurchase when disabled", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t, Policy{AllowRepurchase: false})
		m.shop.On("GetItem", mock.Anything, "frame").Return(frame(), nil)
		m.shop.On("FindGrant", mock.Anything, "uid-1", "frame").
			Return(entity.NewOwnedItem("uid-1", frame(), fixedTime), nil)

		// Act
		_, err := service.Purchase(ctx, "uid-1", "frame")

		// Assert
		assert.ErrorIs(t, err, errs.ErrItemAlreadyOwned)
		m.wallets.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})
}

func TestService_Catalog(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service, m := newTestService(t, Policy{AllowRepurchase: true})
	items := []*entity.ShopItem{frame()}
	m.shop.On("ListActiveItems", ctx).Return(items, nil)
	m.shop.On("ListGrants", ctx, "uid-1").Return([]*entity.OwnedItem{}, nil)

	// Act
	listed, err := service.ListItems(ctx)
	require.NoError(t, err)
	owned, err := service.ListOwnedItems(ctx, "uid-1")
	require.NoError(t, err)

	// Assert
	assert.Len(t, listed, 1)
	assert.Empty(t, owned)
	m.shop.AssertExpectations(t)
}
