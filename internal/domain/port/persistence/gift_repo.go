package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// GiftRepository covers the gift catalog and the receipts owned by receivers
type GiftRepository interface {
	// FindCatalogGift returns the catalog record, or nil when there is none
	FindCatalogGift(ctx context.Context, giftID string) (*entity.Gift, error)

	// UpsertCatalogGift provisions a catalog record
	UpsertCatalogGift(ctx context.Context, gift *entity.Gift) error

	// CreateReceipt stores a new receipt
	CreateReceipt(ctx context.Context, receipt *entity.GiftReceipt) error

	// GetReceiptForUpdate loads a receipt owned by userID and locks it
	//
	// Possible errors:
	// - ErrReceiptNotFound: If no receipt with this id belongs to userID
	GetReceiptForUpdate(ctx context.Context, userID, receiptID string) (*entity.GiftReceipt, error)

	// MarkRedeemed persists the redemption fields of receipt
	MarkRedeemed(ctx context.Context, receipt *entity.GiftReceipt) error

	// ListReceipts returns receipts of userID newest first, optionally filtered by status
	ListReceipts(ctx context.Context, userID string, status entity.ReceiptStatus, limit int) ([]*entity.GiftReceipt, error)
}
