package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// RateLimitRepository stores the per-day action counters
type RateLimitRepository interface {
	// Increment adds one to the (userID, action, day) counter, creating it at 1,
	// and returns the counter after the increment
	Increment(ctx context.Context, userID string, action entity.RateLimitAction, day string, now time.Time) (*entity.RateLimitCounter, error)

	// DeleteBefore removes counters of days strictly before day and returns how many were removed
	DeleteBefore(ctx context.Context, day string) (int64, error)
}
