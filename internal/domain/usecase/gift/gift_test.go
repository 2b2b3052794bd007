package gift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	portusecase "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/mocks/port/core"
	"github.com/amirhossein-jamali/coin-ledger/mocks/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/mocks/port/usecase"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type giftMocks struct {
	uow      *persistence.MockUnitOfWork
	wallets  *persistence.MockWalletRepository
	ledger   *persistence.MockCoinTransactionRepository
	gifts    *persistence.MockGiftRepository
	messages *persistence.MockMessageRepository
	limiter  *usecase.MockRateLimiter
}

func newTestService(t *testing.T) (*Service, *giftMocks) {
	m := &giftMocks{
		uow:      new(persistence.MockUnitOfWork),
		wallets:  new(persistence.MockWalletRepository),
		ledger:   new(persistence.MockCoinTransactionRepository),
		gifts:    new(persistence.MockGiftRepository),
		messages: new(persistence.MockMessageRepository),
		limiter:  new(usecase.MockRateLimiter),
	}
	mockTime := new(core.MockTimeProvider)
	mockTime.On("Now").Return(fixedTime)

	ids := new(core.MockIDGenerator)
	ids.On("NewID").Return("tx-1").Once()
	ids.On("NewID").Return("msg-1").Once()
	ids.On("NewID").Return("rcpt-1").Once()

	logger := new(core.MockLogger)
	logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	m.uow.On("Execute", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }).Maybe()
	m.uow.On("GetWalletRepository", mock.Anything).Return(m.wallets).Maybe()
	m.uow.On("GetCoinTransactionRepository", mock.Anything).Return(m.ledger).Maybe()
	m.uow.On("GetGiftRepository", mock.Anything).Return(m.gifts).Maybe()
	m.uow.On("GetMessageRepository", mock.Anything).Return(m.messages).Maybe()

	return NewGiftService(m.uow, m.limiter, ids, mockTime, logger, DefaultPolicy()), m
}

func sendRequest() portusecase.SendGiftRequest {
	return portusecase.SendGiftRequest{
		SenderID:   "alice",
		ReceiverID: "bob",
		RoomID:     "room-1",
		GiftID:     "tra-sua",
	}
}

func TestService_SendGift(t *testing.T) {
	t.Run("should write every side effect of a fallback gift", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)

		m.limiter.On("CheckRateLimit", ctx, "alice", entity.ActionGiftsSend, int64(20)).Return(int64(1), nil)
		m.gifts.On("FindCatalogGift", mock.Anything, "tra-sua").Return(nil, nil)
		m.wallets.On("GetForUpdate", mock.Anything, "alice").
			Return(entity.RestoreWallet("alice", 100, 0, 0, 0, fixedTime), nil)
		m.wallets.On("Save", mock.Anything, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.UserID == "alice" && w.Coins() == 85
		})).Return(nil)
		m.ledger.On("Append", mock.Anything, mock.MatchedBy(func(tx *entity.CoinTransaction) bool {
			return tx.Type == entity.TransactionSpend && tx.Amount == -15 &&
				tx.Metadata["kind"] == entity.MetadataKindGift && tx.Metadata["to"] == "bob" &&
				tx.Metadata["giftId"] == "tra-sua" && tx.Metadata["roomId"] == "room-1"
		})).Return(nil)
		m.messages.On("Create", mock.Anything, mock.MatchedBy(func(msg *entity.ChatMessage) bool {
			return msg.ID == "msg-1" && msg.RoomID == "room-1" && msg.ToUserID == "bob" &&
				msg.Text == "🎁 Bạn đã tặng quà: 🧋 Trà sữa (🥖 15)"
		})).Return(nil)
		m.gifts.On("CreateReceipt", mock.Anything, mock.MatchedBy(func(r *entity.GiftReceipt) bool {
			return r.ID == "rcpt-1" && r.UserID == "bob" && r.FromUserID == "alice" &&
				r.Status == entity.ReceiptUnread && !r.Redeemed && r.Gift.Price == 15
		})).Return(nil)
		m.wallets.On("IncrementGiftReceived", mock.Anything, "bob", int64(15)).Return(nil)

		// Act
		result, err := service.SendGift(ctx, sendRequest())

		// Assert
		require.NoError(t, err)
		assert.Equal(t, entity.GiftSourceFallback, result.Source)
		assert.Equal(t, "tra-sua", result.Gift.ID)
		assert.Equal(t, "msg-1", result.MessageID)
		assert.Equal(t, "rcpt-1", result.ReceiptID)
		assert.Equal(t, int64(85), result.NewBalance)
		m.wallets.AssertExpectations(t)
		m.ledger.AssertExpectations(t)
		m.messages.AssertExpectations(t)
		m.gifts.AssertExpectations(t)
	})

	t.Run("should reject gifts to self before counting", func(t *testing.T) {
		// Arrange
		service, m := newTestService(t)
		req := sendRequest()
		req.ReceiverID = req.SenderID

		// Act
		_, err := service.SendGift(context.Background(), req)

		// Assert
		assert.ErrorIs(t, err, errs.ErrCannotGiftSelf)
		m.limiter.AssertNotCalled(t, "CheckRateLimit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should report missing fields", func(t *testing.T) {
		// Arrange
		service, _ := newTestService(t)

		// Act
		_, err := service.SendGift(context.Background(), portusecase.SendGiftRequest{SenderID: "alice"})

		// Assert
		var validationErr *errs.ValidationError
		require.True(t, errors.As(err, &validationErr))
		require.Len(t, validationErr.Fields, 3)
		assert.Equal(t, "receiverUid", validationErr.Fields[0].Field)
		assert.Equal(t, "roomId", validationErr.Fields[1].Field)
		assert.Equal(t, "giftId", validationErr.Fields[2].Field)
	})

	t.Run("should fail on unknown gift without touching balances", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		req := sendRequest()
		req.GiftID = "kim-cuong"
		m.limiter.On("CheckRateLimit", ctx, "alice", entity.ActionGiftsSend, int64(20)).Return(int64(1), nil)
		m.gifts.On("FindCatalogGift", mock.Anything, "kim-cuong").Return(nil, nil)

		// Act
		_, err := service.SendGift(ctx, req)

		// Assert
		assert.ErrorIs(t, err, errs.ErrGiftNotFound)
		m.wallets.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("should fail on insufficient funds and create nothing", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		m.limiter.On("CheckRateLimit", ctx, "alice", entity.ActionGiftsSend, int64(20)).Return(int64(1), nil)
		m.gifts.On("FindCatalogGift", mock.Anything, "tra-sua").
			Return(&entity.Gift{ID: "tra-sua", Name: "Trà sữa lớn", Price: 25, Icon: "🧋", Active: true}, nil)
		m.wallets.On("GetForUpdate", mock.Anything, "alice").
			Return(entity.RestoreWallet("alice", 20, 0, 0, 0, fixedTime), nil)

		// Act
		_, err := service.SendGift(ctx, sendRequest())

		// Assert
		assert.True(t, errs.IsInsufficientFundsError(err))
		m.messages.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.gifts.AssertNotCalled(t, "CreateReceipt", mock.Anything, mock.Anything)
		m.wallets.AssertNotCalled(t, "IncrementGiftReceived", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_RedeemGift(t *testing.T) {
	unreadReceipt := func() *entity.GiftReceipt {
		return entity.NewGiftReceipt("rcpt-1", "bob", "alice", "Alice", "room-1",
			entity.GiftSnapshot{ID: "tra-sua", Name: "Trà sữa", Price: 15, Icon: "🧋"}, fixedTime)
	}

	t.Run("should credit the rounded value and mark the receipt", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		m.limiter.On("CheckRateLimit", ctx, "bob", entity.ActionGiftsRedeem, int64(10)).Return(int64(1), nil)
		m.gifts.On("GetReceiptForUpdate", mock.Anything, "bob", "rcpt-1").Return(unreadReceipt(), nil)
		m.wallets.On("GetForUpdate", mock.Anything, "bob").Return(entity.NewWallet("bob"), nil)
		m.wallets.On("Save", mock.Anything, mock.MatchedBy(func(w *entity.Wallet) bool {
			return w.Coins() == 8 && w.GiftRedeemedValue == 8
		})).Return(nil)
		m.ledger.On("Append", mock.Anything, mock.MatchedBy(func(tx *entity.CoinTransaction) bool {
			return tx.Type == entity.TransactionRedeem && tx.Amount == 8 &&
				tx.Metadata["kind"] == entity.MetadataKindGiftRedeem && tx.Metadata["receiptId"] == "rcpt-1"
		})).Return(nil)
		m.gifts.On("MarkRedeemed", mock.Anything, mock.MatchedBy(func(r *entity.GiftReceipt) bool {
			return r.Redeemed && r.Status == entity.ReceiptRead && *r.RedeemValue == 8
		})).Return(nil)

		// Act
		result, err := service.RedeemGift(ctx, "bob", "rcpt-1", 0.5)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(8), result.RedeemValue)
		assert.Equal(t, int64(8), result.NewBalance)
		m.gifts.AssertExpectations(t)
	})

	t.Run("should refuse a second redemption", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		receipt := unreadReceipt()
		require.NoError(t, receipt.Redeem(15, fixedTime))
		m.limiter.On("CheckRateLimit", ctx, "bob", entity.ActionGiftsRedeem, int64(10)).Return(int64(2), nil)
		m.gifts.On("GetReceiptForUpdate", mock.Anything, "bob", "rcpt-1").Return(receipt, nil)

		// Act
		_, err := service.RedeemGift(ctx, "bob", "rcpt-1", 1)

		// Assert
		assert.ErrorIs(t, err, errs.ErrAlreadyRedeemed)
		m.wallets.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("should not find receipts of other users", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		m.limiter.On("CheckRateLimit", ctx, "mallory", entity.ActionGiftsRedeem, int64(10)).Return(int64(1), nil)
		m.gifts.On("GetReceiptForUpdate", mock.Anything, "mallory", "rcpt-1").Return(nil, errs.ErrReceiptNotFound)

		// Act
		_, err := service.RedeemGift(ctx, "mallory", "rcpt-1", 1)

		// Assert
		assert.ErrorIs(t, err, errs.ErrReceiptNotFound)
	})

	t.Run("should not credit past the coin cap", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		receipt := unreadReceipt()
		m.limiter.On("CheckRateLimit", ctx, "bob", entity.ActionGiftsRedeem, int64(10)).Return(int64(1), nil)
		m.gifts.On("GetReceiptForUpdate", mock.Anything, "bob", "rcpt-1").Return(receipt, nil)
		m.wallets.On("GetForUpdate", mock.Anything, "bob").
			Return(entity.RestoreWallet("bob", entity.DefaultMaxCoins-10, 0, 0, 0, fixedTime), nil)

		// Act
		_, err := service.RedeemGift(ctx, "bob", "rcpt-1", 1)

		// Assert
		assert.ErrorIs(t, err, errs.ErrCoinLimitExceeded)
		assert.False(t, receipt.Redeemed)
		assert.Equal(t, entity.ReceiptUnread, receipt.Status)
		m.wallets.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		m.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		m.gifts.AssertNotCalled(t, "MarkRedeemed", mock.Anything, mock.Anything)
	})

	t.Run("should reject a zero value redemption", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		m.limiter.On("CheckRateLimit", ctx, "bob", entity.ActionGiftsRedeem, int64(10)).Return(int64(1), nil)
		m.gifts.On("GetReceiptForUpdate", mock.Anything, "bob", "rcpt-1").Return(unreadReceipt(), nil)

		// Act
		_, err := service.RedeemGift(ctx, "bob", "rcpt-1", 0)

		// Assert
		assert.ErrorIs(t, err, errs.ErrInvalidRedeemValue)
		m.gifts.AssertNotCalled(t, "MarkRedeemed", mock.Anything, mock.Anything)
	})
}

func TestService_ListReceived(t *testing.T) {
	t.Run("should apply the default limit", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		service, m := newTestService(t)
		m.gifts.On("ListReceipts", ctx, "bob", entity.ReceiptUnread, 50).Return([]*entity.GiftReceipt{}, nil)

		// Act
		receipts, err := service.ListReceived(ctx, "bob", entity.ReceiptUnread, 0)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, receipts)
		m.gifts.AssertExpectations(t)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		// Arrange
		service, _ := newTestService(t)

		// Act
		_, err := service.ListReceived(context.Background(), "bob", entity.ReceiptStatus("archived"), 10)

		// Assert
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
