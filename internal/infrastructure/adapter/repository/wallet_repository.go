package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	return entity.RestoreWallet(m.UserID, m.Coins, m.GiftReceivedCount, m.GiftReceivedValue, m.GiftRedeemedValue, m.UpdatedAt)
}

// Get retrieves the wallet of userID, or an empty one
func (r *WalletRepository) Get(ctx context.Context, userID string) (*entity.Wallet, error) {
	return r.load(ctx, userID, false)
}

// GetForUpdate retrieves the wallet of userID holding a row lock.
// SQLite has no row locks; its database-level write lock serializes instead.
func (r *WalletRepository) GetForUpdate(ctx context.Context, userID string) (*entity.Wallet, error) {
	return r.load(ctx, userID, true)
}

func (r *WalletRepository) load(ctx context.Context, userID string, forUpdate bool) (*entity.Wallet, error) {
	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var walletModel model.Wallet
	err := query.Where("user_id = ?", userID).Take(&walletModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.NewWallet(userID), nil
	}
	if err != nil {
		r.logger.Error("Database error when loading wallet", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.Wrap("load wallet", err)
	}

	return walletToEntity(&walletModel), nil
}

// Save inserts the wallet or updates its balance and redeemed aggregate.
// Received aggregates are only changed through IncrementGiftReceived.
func (r *WalletRepository) Save(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:            wallet.UserID,
		Coins:             wallet.Coins(),
		GiftReceivedCount: wallet.GiftReceivedCount,
		GiftReceivedValue: wallet.GiftReceivedValue,
		GiftRedeemedValue: wallet.GiftRedeemedValue,
		CreatedAt:         wallet.UpdatedAt,
		UpdatedAt:         wallet.UpdatedAt,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"coins", "gift_redeemed_value", "updated_at"}),
	}).Create(&walletModel).Error
	if err != nil {
		r.logger.Error("Database error when saving wallet", map[string]any{
			"user_id": wallet.UserID,
			"coins":   wallet.Coins(),
			"error":   err.Error(),
		})
		return r.errorClassifier.Wrap("save wallet", err)
	}

	wallet.Exists = true
	r.logger.Debug("Wallet saved", map[string]any{
		"user_id": wallet.UserID,
		"coins":   wallet.Coins(),
	})
	return nil
}

// IncrementGiftReceived bumps the received count by one and the received value by value
func (r *WalletRepository) IncrementGiftReceived(ctx context.Context, userID string, value int64) error {
	walletModel := model.Wallet{
		UserID:            userID,
		GiftReceivedCount: 1,
		GiftReceivedValue: value,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"gift_received_count": gorm.Expr("wallets.gift_received_count + ?", 1),
			"gift_received_value": gorm.Expr("wallets.gift_received_value + ?", value),
		}),
	}).Create(&walletModel).Error
	if err != nil {
		r.logger.Error("Database error when incrementing gift aggregates", map[string]any{
			"user_id": userID,
			"value":   value,
			"error":   err.Error(),
		})
		return r.errorClassifier.Wrap("increment gift received", err)
	}
	return nil
}
