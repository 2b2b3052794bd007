package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// ShopItem is an item that can be bought with coins
type ShopItem struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Active      bool
}

// CheckPurchasable verifies the item can be sold
func (i *ShopItem) CheckPurchasable() error {
	if !i.Active {
		return fmt.Errorf("%w: %s", errs.ErrItemInactive, i.ID)
	}
	if i.Price <= 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidPrice, i.Price)
	}
	return nil
}

// OwnedItem grants an item to a user, with a snapshot of the item at purchase time
type OwnedItem struct {
	UserID      string
	ItemID      string
	GrantedAt   time.Time
	Price       int64
	Name        string
	Description string
}

// NewOwnedItem creates a grant for item
func NewOwnedItem(userID string, item *ShopItem, grantedAt time.Time) *OwnedItem {
	return &OwnedItem{
		UserID:      userID,
		ItemID:      item.ID,
		GrantedAt:   grantedAt,
		Price:       item.Price,
		Name:        item.Name,
		Description: item.Description,
	}
}
