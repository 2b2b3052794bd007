package ratelimit

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// Service counts mutating actions per user per UTC day.
// Counters are committed in their own transaction, before and independently
// of the operation they guard, so a rejected or failed operation still uses
// up one unit of quota.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRateLimitService creates a new rate limiter
func NewRateLimitService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.RateLimiter = (*Service)(nil)

// CheckRateLimit increments today's counter and rejects the attempt once it
// passes maxPerDay. A maxPerDay of zero or less disables the quota.
func (s *Service) CheckRateLimit(
	ctx context.Context,
	userID string,
	action entity.RateLimitAction,
	maxPerDay int64,
) (int64, error) {
	if maxPerDay <= 0 {
		return 0, nil
	}

	now := s.timeProvider.Now()
	day := entity.DayKey(now)

	var counter *entity.RateLimitCounter
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		c, err := s.uow.GetRateLimitRepository(txCtx).Increment(txCtx, userID, action, day, now)
		if err != nil {
			return err
		}
		counter = c
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to increment rate limit counter", map[string]any{
			"userId": userID,
			"action": string(action),
			"day":    day,
			"error":  err.Error(),
		})
		return 0, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if counter.Exceeds(maxPerDay) {
		rateErr := errs.NewRateLimitError(userID, string(action), day, counter.Count, maxPerDay)
		s.logger.Warn("Daily rate limit exceeded", errs.LogFieldsOf(rateErr))
		return counter.Count, rateErr
	}

	return counter.Count, nil
}

// PruneBefore deletes counters of days before day
func (s *Service) PruneBefore(ctx context.Context, day string) (int64, error) {
	var removed int64
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		n, err := s.uow.GetRateLimitRepository(txCtx).DeleteBefore(txCtx, day)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to prune rate limit counters: %w", err)
	}

	s.logger.Info("Pruned rate limit counters", map[string]any{
		"before":  day,
		"removed": removed,
	})
	return removed, nil
}
