package repository

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CoinTransactionRepository implements persistence.CoinTransactionRepository using GORM
type CoinTransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCoinTransactionRepository creates a new CoinTransactionRepository instance
func NewCoinTransactionRepository(db *gorm.DB, logger coreport.Logger) *CoinTransactionRepository {
	return &CoinTransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts a ledger entry. Callers hold the user's wallet row lock,
// which keeps the per-user sequence free of races.
func (r *CoinTransactionRepository) Append(ctx context.Context, tx *entity.CoinTransaction) error {
	seq, err := r.nextSeq(ctx, tx.UserID)
	if err != nil {
		return err
	}

	metadata := datatypes.JSONMap(tx.Metadata)
	if metadata == nil {
		metadata = datatypes.JSONMap{}
	}

	txModel := model.CoinTransaction{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		CreatedAt: tx.CreatedAt,
		Seq:       seq,
		Metadata:  metadata,
	}

	if err := r.db.WithContext(ctx).Create(&txModel).Error; err != nil {
		r.logger.Error("Database error when appending ledger entry", map[string]any{
			"transaction_id": tx.ID,
			"user_id":        tx.UserID,
			"type":           string(tx.Type),
			"error":          err.Error(),
		})
		return r.errorClassifier.Wrap("append coin transaction", err)
	}

	r.logger.Debug("Ledger entry appended", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
		"amount":         tx.Amount,
	})
	return nil
}

func (r *CoinTransactionRepository) nextSeq(ctx context.Context, userID string) (int64, error) {
	var last int64
	err := r.db.WithContext(ctx).
		Model(&model.CoinTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, r.errorClassifier.Wrap("next coin transaction sequence", err)
	}
	return last + 1, nil
}

// ListByUser returns a page of the ledger of userID, newest first
func (r *CoinTransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.CoinTransaction, error) {
	var rows []model.CoinTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("seq DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.Wrap("list coin transactions", err)
	}

	result := make([]*entity.CoinTransaction, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		result = append(result, entity.NewCoinTransaction(
			row.ID, row.UserID, entity.TransactionType(row.Type), row.Amount, map[string]any(row.Metadata), row.CreatedAt,
		))
	}
	return result, nil
}
