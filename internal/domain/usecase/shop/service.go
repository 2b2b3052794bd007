package shop

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// Policy controls purchase behaviour
type Policy struct {
	// AllowRepurchase lets an owned item be bought again, debiting the
	// buyer and refreshing the grant. When false the second purchase fails
	// with ErrItemAlreadyOwned before any debit.
	AllowRepurchase bool
}

// Service implements the shop catalog and purchases
type Service struct {
	uow          persistence.UnitOfWork
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	policy       Policy
}

// NewShopService creates a new shop service
func NewShopService(
	uow persistence.UnitOfWork,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	policy Policy,
) *Service {
	return &Service{
		uow:          uow,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		policy:       policy,
	}
}

var _ usecase.ShopUseCase = (*Service)(nil)

// ListItems returns the active catalog, cheapest first
func (s *Service) ListItems(ctx context.Context) ([]*entity.ShopItem, error) {
	return s.uow.GetShopRepository(ctx).ListActiveItems(ctx)
}

// GetItem returns a single catalog item, active or not
func (s *Service) GetItem(ctx context.Context, itemID string) (*entity.ShopItem, error) {
	return s.uow.GetShopRepository(ctx).GetItem(ctx, itemID)
}

// ListOwnedItems returns the grants of userID, newest first
func (s *Service) ListOwnedItems(ctx context.Context, userID string) ([]*entity.OwnedItem, error) {
	return s.uow.GetShopRepository(ctx).ListGrants(ctx, userID)
}

// Purchase debits the item price and grants the item in one transaction
func (s *Service) Purchase(ctx context.Context, userID, itemID string) (*usecase.PurchaseResult, error) {
	if strings.TrimSpace(itemID) == "" {
		return nil, errs.NewValidationError(errs.FieldError{Field: "itemId", Message: "Item ID is required"})
	}

	var result *usecase.PurchaseResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		shop := s.uow.GetShopRepository(txCtx)

		item, err := shop.GetItem(txCtx, itemID)
		if err != nil {
			return err
		}
		if err := item.CheckPurchasable(); err != nil {
			return err
		}

		if !s.policy.AllowRepurchase {
			owned, err := shop.FindGrant(txCtx, userID, itemID)
			if err != nil {
				return err
			}
			if owned != nil {
				return errs.ErrItemAlreadyOwned
			}
		}

		wallets := s.uow.GetWalletRepository(txCtx)
		wallet, err := wallets.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if err := wallet.Debit(item.Price, now); err != nil {
			return err
		}
		if err := wallets.Save(txCtx, wallet); err != nil {
			return err
		}

		entry := entity.NewCoinTransaction(s.ids.NewID(), userID, entity.TransactionPurchase, -item.Price, map[string]any{
			"itemId": item.ID,
		}, now)
		if err := s.uow.GetCoinTransactionRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		if err := shop.UpsertGrant(txCtx, entity.NewOwnedItem(userID, item, now)); err != nil {
			return err
		}

		result = &usecase.PurchaseResult{
			ItemID:     item.ID,
			ItemName:   item.Name,
			Price:      item.Price,
			NewBalance: wallet.Coins(),
		}
		return nil
	})
	if err != nil {
		fields := map[string]any{
			"userId": userID,
			"itemId": itemID,
		}
		if errs.IsClientError(err) {
			fields["error_code"] = errs.ErrorCode(err)
			s.logger.Warn("Purchase rejected", fields)
		} else {
			fields["error"] = err.Error()
			s.logger.Error("Purchase failed", fields)
		}
		return nil, err
	}

	s.logger.Info("Item purchased", map[string]any{
		"userId":     userID,
		"itemId":     result.ItemID,
		"price":      result.Price,
		"newBalance": result.NewBalance,
	})
	return result, nil
}
