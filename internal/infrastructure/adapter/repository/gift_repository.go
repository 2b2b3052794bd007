package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GiftRepository implements persistence.GiftRepository using GORM
type GiftRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewGiftRepository creates a new GiftRepository instance
func NewGiftRepository(db *gorm.DB, logger coreport.Logger) *GiftRepository {
	return &GiftRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func snapshotToModel(gift entity.GiftSnapshot) model.GiftSnapshot {
	return model.GiftSnapshot{
		ID:    gift.ID,
		Name:  gift.Name,
		Price: gift.Price,
		Icon:  gift.Icon,
	}
}

func receiptToEntity(m *model.GiftReceipt) *entity.GiftReceipt {
	snapshot := m.Gift.Data()
	return &entity.GiftReceipt{
		ID:         m.ID,
		UserID:     m.UserID,
		FromUserID: m.FromUserID,
		FromName:   m.FromName,
		RoomID:     m.RoomID,
		Gift: entity.GiftSnapshot{
			ID:    snapshot.ID,
			Name:  snapshot.Name,
			Price: snapshot.Price,
			Icon:  snapshot.Icon,
		},
		CreatedAt:   m.CreatedAt,
		Status:      entity.ReceiptStatus(m.Status),
		Redeemed:    m.Redeemed,
		RedeemedAt:  m.RedeemedAt,
		RedeemValue: m.RedeemValue,
	}
}

// FindCatalogGift returns the catalog record for giftID, or nil
func (r *GiftRepository) FindCatalogGift(ctx context.Context, giftID string) (*entity.Gift, error) {
	var giftModel model.Gift
	err := r.db.WithContext(ctx).Where("id = ?", giftID).Take(&giftModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.errorClassifier.Wrap("find catalog gift", err)
	}

	return &entity.Gift{
		ID:     giftModel.ID,
		Name:   giftModel.Name,
		Price:  giftModel.Price,
		Icon:   giftModel.Icon,
		Active: giftModel.Active,
	}, nil
}

// UpsertCatalogGift creates or replaces a catalog record
func (r *GiftRepository) UpsertCatalogGift(ctx context.Context, gift *entity.Gift) error {
	giftModel := model.Gift{
		ID:     gift.ID,
		Name:   gift.Name,
		Price:  gift.Price,
		Icon:   gift.Icon,
		Active: gift.Active,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "price", "icon", "active", "updated_at"}),
	}).Create(&giftModel).Error
	if err != nil {
		return r.errorClassifier.Wrap("upsert catalog gift", err)
	}
	return nil
}

// CreateReceipt inserts a new receipt
func (r *GiftRepository) CreateReceipt(ctx context.Context, receipt *entity.GiftReceipt) error {
	receiptModel := model.GiftReceipt{
		ID:          receipt.ID,
		UserID:      receipt.UserID,
		FromUserID:  receipt.FromUserID,
		FromName:    receipt.FromName,
		RoomID:      receipt.RoomID,
		Gift:        datatypes.NewJSONType(snapshotToModel(receipt.Gift)),
		Status:      string(receipt.Status),
		Redeemed:    receipt.Redeemed,
		RedeemedAt:  receipt.RedeemedAt,
		RedeemValue: receipt.RedeemValue,
		CreatedAt:   receipt.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&receiptModel).Error; err != nil {
		r.logger.Error("Database error when creating gift receipt", map[string]any{
			"receipt_id": receipt.ID,
			"user_id":    receipt.UserID,
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap("create gift receipt", err)
	}
	return nil
}

// GetReceiptForUpdate loads and locks a receipt owned by userID
func (r *GiftRepository) GetReceiptForUpdate(ctx context.Context, userID, receiptID string) (*entity.GiftReceipt, error) {
	var receiptModel model.GiftReceipt
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND user_id = ?", receiptID, userID).
		Take(&receiptModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrReceiptNotFound
	}
	if err != nil {
		return nil, r.errorClassifier.Wrap("load gift receipt", err)
	}

	return receiptToEntity(&receiptModel), nil
}

// MarkRedeemed flips the receipt to redeemed. The update only matches an
// unredeemed row, so a second writer gets ErrAlreadyRedeemed.
func (r *GiftRepository) MarkRedeemed(ctx context.Context, receipt *entity.GiftReceipt) error {
	result := r.db.WithContext(ctx).
		Model(&model.GiftReceipt{}).
		Where("id = ? AND user_id = ? AND redeemed = ?", receipt.ID, receipt.UserID, false).
		Updates(map[string]any{
			"redeemed":     true,
			"redeemed_at":  receipt.RedeemedAt,
			"redeem_value": receipt.RedeemValue,
			"status":       string(receipt.Status),
		})
	if result.Error != nil {
		return r.errorClassifier.Wrap("mark receipt redeemed", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Receipt was redeemed concurrently", map[string]any{
			"receipt_id": receipt.ID,
			"user_id":    receipt.UserID,
		})
		return errs.ErrAlreadyRedeemed
	}
	return nil
}

// ListReceipts returns receipts of userID newest first
func (r *GiftRepository) ListReceipts(ctx context.Context, userID string, status entity.ReceiptStatus, limit int) ([]*entity.GiftReceipt, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var rows []model.GiftReceipt
	if err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.Wrap("list gift receipts", err)
	}

	result := make([]*entity.GiftReceipt, 0, len(rows))
	for i := range rows {
		result = append(result, receiptToEntity(&rows[i]))
	}
	return result, nil
}
