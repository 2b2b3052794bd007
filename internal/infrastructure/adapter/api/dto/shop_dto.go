package dto

import (
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// ShopItemDTO is a catalog item
type ShopItemDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Active      bool   `json:"active"`
}

// ShopItemsResponse lists the active catalog
type ShopItemsResponse struct {
	Success bool          `json:"success"`
	Items   []ShopItemDTO `json:"items"`
	Count   int           `json:"count"`
}

// ShopItemResponse wraps a single catalog item
type ShopItemResponse struct {
	Success bool        `json:"success"`
	Item    ShopItemDTO `json:"item"`
}

// PurchaseRequest is the body of POST /api/shop/purchase
type PurchaseRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// PurchaseResponse represents a committed purchase
type PurchaseResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	Price      int64  `json:"price"`
	NewBalance int64  `json:"newBalance"`
}

// OwnedItemMeta is the snapshot taken when an item was bought
type OwnedItemMeta struct {
	Price       int64  `json:"price"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// OwnedItemDTO is one grant of the caller
type OwnedItemDTO struct {
	ID        string        `json:"id"`
	ItemID    string        `json:"itemId"`
	GrantedAt time.Time     `json:"grantedAt"`
	Meta      OwnedItemMeta `json:"meta"`
}

// OwnedItemsResponse lists the caller's grants
type OwnedItemsResponse struct {
	Success bool           `json:"success"`
	Items   []OwnedItemDTO `json:"items"`
	Count   int            `json:"count"`
}

// NewShopItemDTO maps a catalog item to its wire form
func NewShopItemDTO(item *entity.ShopItem) ShopItemDTO {
	return ShopItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Active:      item.Active,
	}
}

// NewOwnedItemDTOs maps grants to their wire form
func NewOwnedItemDTOs(grants []*entity.OwnedItem) []OwnedItemDTO {
	out := make([]OwnedItemDTO, 0, len(grants))
	for _, g := range grants {
		out = append(out, OwnedItemDTO{
			ID:        g.ItemID,
			ItemID:    g.ItemID,
			GrantedAt: g.GrantedAt,
			Meta: OwnedItemMeta{
				Price:       g.Price,
				Name:        g.Name,
				Description: g.Description,
			},
		})
	}
	return out
}
