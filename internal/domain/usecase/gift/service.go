package gift

import (
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// Policy holds the gift quotas and the balance cap applied on redemption
type Policy struct {
	MaxCoins       int64
	SendsPerDay    int64
	RedeemsPerDay  int64
	ReceivedLimit  int
	MaxListedGifts int
}

// DefaultPolicy returns the limits used when nothing is configured
func DefaultPolicy() Policy {
	return Policy{
		MaxCoins:       entity.DefaultMaxCoins,
		SendsPerDay:    20,
		RedeemsPerDay:  10,
		ReceivedLimit:  50,
		MaxListedGifts: 200,
	}
}

// Service implements gift sending, redemption and the receiver inbox
type Service struct {
	uow          persistence.UnitOfWork
	limiter      usecase.RateLimiter
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

// NewGiftService creates a new gift service
func NewGiftService(
	uow persistence.UnitOfWork,
	limiter usecase.RateLimiter,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *Service {
	return &Service{
		uow:          uow,
		limiter:      limiter,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy,
	}
}

var _ usecase.GiftUseCase = (*Service)(nil)
