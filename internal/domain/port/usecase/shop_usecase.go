package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// PurchaseResult is the outcome of a committed purchase
type PurchaseResult struct {
	ItemID     string
	ItemName   string
	Price      int64
	NewBalance int64
}

// ShopUseCase defines shop operations
type ShopUseCase interface {
	ListItems(ctx context.Context) ([]*entity.ShopItem, error)
	GetItem(ctx context.Context, itemID string) (*entity.ShopItem, error)
	Purchase(ctx context.Context, userID, itemID string) (*PurchaseResult, error)
	ListOwnedItems(ctx context.Context, userID string) ([]*entity.OwnedItem, error)
}
