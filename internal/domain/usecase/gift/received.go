package gift

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// ListReceived returns the receipts of userID newest first.
// An empty status lists every receipt.
func (s *Service) ListReceived(ctx context.Context, userID string, status entity.ReceiptStatus, limit int) ([]*entity.GiftReceipt, error) {
	if status != "" && !status.IsValid() {
		return nil, errs.NewValidationError(errs.FieldError{Field: "status", Message: "Status must be unread or read"})
	}
	if limit <= 0 {
		limit = s.policy.ReceivedLimit
	}
	if s.policy.MaxListedGifts > 0 && limit > s.policy.MaxListedGifts {
		limit = s.policy.MaxListedGifts
	}

	return s.uow.GetGiftRepository(ctx).ListReceipts(ctx, userID, status, limit)
}
