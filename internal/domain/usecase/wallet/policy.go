package wallet

import (
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// Policy holds the wallet bounds and daily quotas
type Policy struct {
	MaxCoins     int64
	MinTopup     int64
	MaxTopup     int64
	MinSpend     int64
	MaxSpend     int64
	TopupsPerDay int64
	SpendsPerDay int64
}

// DefaultPolicy returns the limits used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{
		MaxCoins:     entity.DefaultMaxCoins,
		MinTopup:     1,
		MaxTopup:     1000,
		MinSpend:     1,
		MaxSpend:     5000,
		TopupsPerDay: 10,
		SpendsPerDay: 50,
	}
}

func validateAmount(amount, minAmount, maxAmount int64) error {
	if amount < minAmount || amount > maxAmount {
		return errs.NewValidationError(errs.FieldError{
			Field:   "amount",
			Message: fmt.Sprintf("Amount must be between %d and %d", minAmount, maxAmount),
		})
	}
	return nil
}

// Transaction history paging bounds
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// NormalizePage applies the history paging defaults and bounds
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
