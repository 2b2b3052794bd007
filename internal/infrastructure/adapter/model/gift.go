package model

import (
	"time"

	"gorm.io/datatypes"
)

// Gift is a catalog record. Prices here override the built-in table.
type Gift struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"size:255"`
	Price     int64     `gorm:"not null"`
	Icon      string    `gorm:"size:32"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Gift
func (Gift) TableName() string {
	return "gifts"
}

// GiftSnapshot is the JSON shape of the gift copied onto receipts and messages
type GiftSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Icon  string `json:"icon"`
}

// GiftReceipt is the receiver-owned record of a received gift
type GiftReceipt struct {
	ID          string                           `gorm:"primaryKey;size:36"`
	UserID      string                           `gorm:"not null;size:128;index:idx_gift_receipts_user_created,priority:1"`
	FromUserID  string                           `gorm:"not null;size:128"`
	FromName    string                           `gorm:"size:255"`
	RoomID      string                           `gorm:"not null;size:128"`
	Gift        datatypes.JSONType[GiftSnapshot] `gorm:"not null"`
	Status      string                           `gorm:"not null;size:10;index"`
	Redeemed    bool                             `gorm:"not null;default:false"`
	RedeemedAt  *time.Time
	RedeemValue *int64
	CreatedAt   time.Time `gorm:"not null;index:idx_gift_receipts_user_created,priority:2,sort:desc"`
}

// TableName specifies the table name for GiftReceipt
func (GiftReceipt) TableName() string {
	return "gift_receipts"
}
