package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// RateLimiter enforces per-user daily quotas on mutating actions
type RateLimiter interface {
	// CheckRateLimit records one attempt of action by userID today and fails with
	// ErrRateLimitExceeded once the count passes maxPerDay. The attempt is
	// recorded even when it is rejected.
	CheckRateLimit(ctx context.Context, userID string, action entity.RateLimitAction, maxPerDay int64) (int64, error)

	// PruneBefore removes counters older than day
	PruneBefore(ctx context.Context, day string) (int64, error)
}
