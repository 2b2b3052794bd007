package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// ShopRepository covers the shop catalog and item grants
type ShopRepository interface {
	// ListActiveItems returns active items ordered by price ascending
	ListActiveItems(ctx context.Context) ([]*entity.ShopItem, error)

	// GetItem returns one item whether active or not
	//
	// Possible errors:
	// - ErrItemNotFound: If the item does not exist
	GetItem(ctx context.Context, itemID string) (*entity.ShopItem, error)

	// UpsertItem provisions a catalog item
	UpsertItem(ctx context.Context, item *entity.ShopItem) error

	// FindGrant returns the grant of itemID to userID, or nil
	FindGrant(ctx context.Context, userID, itemID string) (*entity.OwnedItem, error)

	// UpsertGrant creates the grant or overwrites the existing one
	UpsertGrant(ctx context.Context, grant *entity.OwnedItem) error

	// ListGrants returns the items owned by userID, most recently granted first
	ListGrants(ctx context.Context, userID string) ([]*entity.OwnedItem, error)
}
