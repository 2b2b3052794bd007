package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateLimitRepository implements persistence.RateLimitRepository using GORM
type RateLimitRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRateLimitRepository creates a new RateLimitRepository instance
func NewRateLimitRepository(db *gorm.DB, logger coreport.Logger) *RateLimitRepository {
	return &RateLimitRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Increment upserts the counter row, adding one on conflict, then reads it back
func (r *RateLimitRepository) Increment(
	ctx context.Context,
	userID string,
	action entity.RateLimitAction,
	day string,
	now time.Time,
) (*entity.RateLimitCounter, error) {
	counter := model.RateLimitCounter{
		UserID:      userID,
		Action:      string(action),
		Day:         day,
		Count:       1,
		LastUpdated: now,
	}

	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "action"}, {Name: "day"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":        gorm.Expr("rate_limit_counters.count + ?", 1),
			"last_updated": now,
		}),
	}).Create(&counter).Error
	if err != nil {
		r.logger.Error("Database error when incrementing rate limit counter", map[string]any{
			"user_id": userID,
			"action":  string(action),
			"day":     day,
			"error":   err.Error(),
		})
		return nil, r.errorClassifier.Wrap("increment rate limit", err)
	}

	var stored model.RateLimitCounter
	err = db.Where("user_id = ? AND action = ? AND day = ?", userID, string(action), day).Take(&stored).Error
	if err != nil {
		return nil, r.errorClassifier.Wrap("read rate limit", err)
	}

	return &entity.RateLimitCounter{
		UserID:      stored.UserID,
		Action:      entity.RateLimitAction(stored.Action),
		Day:         stored.Day,
		Count:       stored.Count,
		LastUpdated: stored.LastUpdated,
	}, nil
}

// DeleteBefore removes counters older than day
func (r *RateLimitRepository) DeleteBefore(ctx context.Context, day string) (int64, error) {
	result := r.db.WithContext(ctx).Where("day < ?", day).Delete(&model.RateLimitCounter{})
	if result.Error != nil {
		return 0, r.errorClassifier.Wrap("prune rate limits", result.Error)
	}
	return result.RowsAffected, nil
}
