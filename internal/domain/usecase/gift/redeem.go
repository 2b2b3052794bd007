package gift

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

// RedeemGift converts an unredeemed receipt into coins for its owner.
// rate is clamped to [0,1]; the receipt flips to redeemed exactly once.
func (s *Service) RedeemGift(ctx context.Context, userID, receiptID string, rate float64) (*usecase.RedeemGiftResult, error) {
	if strings.TrimSpace(receiptID) == "" {
		return nil, errs.NewValidationError(errs.FieldError{Field: "receiptId", Message: "Receipt ID is required"})
	}

	if _, err := s.limiter.CheckRateLimit(ctx, userID, entity.ActionGiftsRedeem, s.policy.RedeemsPerDay); err != nil {
		return nil, err
	}

	var result *usecase.RedeemGiftResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		gifts := s.uow.GetGiftRepository(txCtx)

		receipt, err := gifts.GetReceiptForUpdate(txCtx, userID, receiptID)
		if err != nil {
			return err
		}
		if receipt.Redeemed {
			return errs.ErrAlreadyRedeemed
		}

		value, err := entity.RedeemValue(receipt.Gift.Price, rate)
		if err != nil {
			return err
		}

		wallets := s.uow.GetWalletRepository(txCtx)
		wallet, err := wallets.GetForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if err := wallet.Credit(value, s.policy.MaxCoins, now); err != nil {
			return err
		}
		wallet.RecordRedemption(value)
		if err := wallets.Save(txCtx, wallet); err != nil {
			return err
		}

		entry := entity.NewCoinTransaction(s.ids.NewID(), userID, entity.TransactionRedeem, value, map[string]any{
			"kind":      entity.MetadataKindGiftRedeem,
			"receiptId": receipt.ID,
		}, now)
		if err := s.uow.GetCoinTransactionRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		if err := receipt.Redeem(value, now); err != nil {
			return err
		}
		if err := gifts.MarkRedeemed(txCtx, receipt); err != nil {
			return err
		}

		result = &usecase.RedeemGiftResult{
			ReceiptID:   receipt.ID,
			RedeemValue: value,
			NewBalance:  wallet.Coins(),
		}
		return nil
	})
	if err != nil {
		s.logFailure("Gift redemption", err, map[string]any{
			"userId":    userID,
			"receiptId": receiptID,
			"rate":      rate,
		})
		return nil, err
	}

	s.logger.Info("Gift redeemed", map[string]any{
		"userId":      userID,
		"receiptId":   receiptID,
		"redeemValue": result.RedeemValue,
		"newBalance":  result.NewBalance,
	})
	return result, nil
}
