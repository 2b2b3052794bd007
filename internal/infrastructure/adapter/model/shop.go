package model

import (
	"time"
)

// ShopItem is a purchasable catalog entry
type ShopItem struct {
	ID          string    `gorm:"primaryKey;size:64"`
	Name        string    `gorm:"not null;size:255"`
	Description string    `gorm:"type:text"`
	Price       int64     `gorm:"not null;index"`
	Active      bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for ShopItem
func (ShopItem) TableName() string {
	return "shop_items"
}

// OwnedItem grants a shop item to a user, with a snapshot of the item at
// purchase time
type OwnedItem struct {
	UserID      string    `gorm:"primaryKey;size:128"`
	ItemID      string    `gorm:"primaryKey;size:64"`
	GrantedAt   time.Time `gorm:"not null;index"`
	Price       int64     `gorm:"not null"`
	Name        string    `gorm:"size:255"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the table name for OwnedItem
func (OwnedItem) TableName() string {
	return "owned_items"
}
