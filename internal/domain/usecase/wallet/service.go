package wallet

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// Service implements the wallet use cases on top of the unit of work
type Service struct {
	uow          persistence.UnitOfWork
	limiter      usecase.RateLimiter
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

// NewWalletService creates a new wallet service
func NewWalletService(
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

var _ usecase.WalletUseCase = (*Service)(nil)

// GetBalance reads the wallet outside of any transaction
func (s *Service) GetBalance(ctx context.Context, userID string) (*entity.Wallet, error) {
	wallet, err := s.uow.GetWalletRepository(ctx).Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get wallet", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return wallet, nil
}

// Topup credits amount coins after the topup quota check
func (s *Service) Topup(ctx context.Context, userID string, amount int64, metadata map[string]any) (*usecase.AdjustResult, error) {
	if err := validateAmount(amount, s.policy.MinTopup, s.policy.MaxTopup); err != nil {
		return nil, err
	}

	if _, err := s.limiter.CheckRateLimit(ctx, userID, entity.ActionTopup, s.policy.TopupsPerDay); err != nil {
		return nil, err
	}

	return s.AdjustCoins(ctx, userID, amount, entity.TransactionTopup, metadata)
}

// Spend debits amount coins after the spend quota check
func (s *Service) Spend(ctx context.Context, userID string, amount int64, metadata map[string]any) (*usecase.AdjustResult, error) {
	if err := validateAmount(amount, s.policy.MinSpend, s.policy.MaxSpend); err != nil {
		return nil, err
	}

	if _, err := s.limiter.CheckRateLimit(ctx, userID, entity.ActionSpend, s.policy.SpendsPerDay); err != nil {
		return nil, err
	}

	return s.AdjustCoins(ctx, userID, -amount, entity.TransactionSpend, metadata)
}

// AdjustCoins applies delta and appends the matching ledger entry in one transaction
func (s *Service) AdjustCoins(
	ctx context.Context,
	userID string,
	delta int64,
	txType entity.TransactionType,
	metadata map[string]any,
) (*usecase.AdjustResult, error) {
	if !txType.IsValid() {
		return nil, fmt.Errorf("unknown transaction type %q", txType)
	}

	var result *usecase.AdjustResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		wallets := s.uow.GetWalletRepository(txCtx)

		wallet, err := wallets.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if err := wallet.Adjust(delta, s.policy.MaxCoins, now); err != nil {
			return err
		}

		if err := wallets.Save(txCtx, wallet); err != nil {
			return err
		}

		entry := entity.NewCoinTransaction(s.ids.NewID(), userID, txType, delta, metadata, now)
		if err := s.uow.GetCoinTransactionRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		amount := delta
		if amount < 0 {
			amount = -amount
		}
		result = &usecase.AdjustResult{
			Amount:        amount,
			NewBalance:    wallet.Coins(),
			TransactionID: entry.ID,
		}
		return nil
	})
	if err != nil {
		if errs.IsClientError(err) {
			s.logger.Warn("Coin adjustment rejected", errs.LogFieldsOf(err))
		} else {
			s.logger.Error("Coin adjustment failed", map[string]any{
				"userId": userID,
				"delta":  delta,
				"type":   string(txType),
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Coins adjusted", map[string]any{
		"userId":        userID,
		"delta":         delta,
		"type":          string(txType),
		"newBalance":    result.NewBalance,
		"transactionId": result.TransactionID,
	})

	return result, nil
}

// ListTransactions returns the ledger of userID newest first
func (s *Service) ListTransactions(ctx context.Context, userID string, limit, offset int) ([]*entity.CoinTransaction, error) {
	limit, offset = NormalizePage(limit, offset)
	return s.uow.GetCoinTransactionRepository(ctx).ListByUser(ctx, userID, limit, offset)
}
