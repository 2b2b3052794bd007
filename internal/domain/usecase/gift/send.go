package gift

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
)

func validateSend(req usecase.SendGiftRequest) error {
	var fields []errs.FieldError
	if strings.TrimSpace(req.ReceiverID) == "" {
		fields = append(fields, errs.FieldError{Field: "receiverUid", Message: "Receiver ID is required"})
	}
	if strings.TrimSpace(req.RoomID) == "" {
		fields = append(fields, errs.FieldError{Field: "roomId", Message: "Room ID is required"})
	}
	if strings.TrimSpace(req.GiftID) == "" {
		fields = append(fields, errs.FieldError{Field: "giftId", Message: "Gift ID is required"})
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// SendGift moves the gift price from the sender into a receipt for the receiver.
// The debit, ledger entry, chat message, receipt and receiver aggregates are
// written together or not at all.
func (s *Service) SendGift(ctx context.Context, req usecase.SendGiftRequest) (*usecase.SendGiftResult, error) {
	if err := validateSend(req); err != nil {
		return nil, err
	}
	if req.SenderID == req.ReceiverID {
		return nil, errs.ErrCannotGiftSelf
	}
	if strings.TrimSpace(req.SenderName) == "" {
		req.SenderName = entity.DefaultSenderName
	}

	if _, err := s.limiter.CheckRateLimit(ctx, req.SenderID, entity.ActionGiftsSend, s.policy.SendsPerDay); err != nil {
		return nil, err
	}

	var result *usecase.SendGiftResult
	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		gifts := s.uow.GetGiftRepository(txCtx)

		catalog, err := gifts.FindCatalogGift(txCtx, req.GiftID)
		if err != nil {
			return err
		}
		resolved, err := entity.ResolveGift(req.GiftID, catalog)
		if err != nil {
			return err
		}
		gift := resolved.Gift

		wallets := s.uow.GetWalletRepository(txCtx)
		sender, err := wallets.GetForUpdate(txCtx, req.SenderID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		if err := sender.Debit(gift.Price, now); err != nil {
			return err
		}
		if err := wallets.Save(txCtx, sender); err != nil {
			return err
		}

		entry := entity.NewCoinTransaction(s.ids.NewID(), req.SenderID, entity.TransactionSpend, -gift.Price, map[string]any{
			"kind":   entity.MetadataKindGift,
			"giftId": gift.ID,
			"to":     req.ReceiverID,
			"roomId": req.RoomID,
		}, now)
		if err := s.uow.GetCoinTransactionRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		msg := entity.NewGiftMessage(s.ids.NewID(), req.RoomID, req.SenderID, req.ReceiverID, req.SenderName, gift, now)
		if err := s.uow.GetMessageRepository(txCtx).Create(txCtx, msg); err != nil {
			return err
		}

		receipt := entity.NewGiftReceipt(s.ids.NewID(), req.ReceiverID, req.SenderID, req.SenderName, req.RoomID, gift.Snapshot(), now)
		if err := gifts.CreateReceipt(txCtx, receipt); err != nil {
			return err
		}

		if err := wallets.IncrementGiftReceived(txCtx, req.ReceiverID, gift.Price); err != nil {
			return err
		}

		result = &usecase.SendGiftResult{
			Gift:       gift,
			Source:     resolved.Source,
			MessageID:  msg.ID,
			ReceiptID:  receipt.ID,
			NewBalance: sender.Coins(),
		}
		return nil
	})
	if err != nil {
		s.logFailure("Gift send", err, map[string]any{
			"senderId":   req.SenderID,
			"receiverId": req.ReceiverID,
			"giftId":     req.GiftID,
		})
		return nil, err
	}

	s.logger.Info("Gift sent", map[string]any{
		"senderId":   req.SenderID,
		"receiverId": req.ReceiverID,
		"giftId":     result.Gift.ID,
		"price":      result.Gift.Price,
		"source":     string(result.Source),
		"receiptId":  result.ReceiptID,
	})
	return result, nil
}

func (s *Service) logFailure(operation string, err error, fields map[string]any) {
	if errs.IsClientError(err) {
		for k, v := range errs.LogFieldsOf(err) {
			fields[k] = v
		}
		s.logger.Warn(operation+" rejected", fields)
		return
	}
	fields["error"] = err.Error()
	s.logger.Error(operation+" failed", fields)
}
