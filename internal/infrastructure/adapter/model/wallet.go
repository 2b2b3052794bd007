package model

import (
	"time"
)

// Wallet is the per-user balance row. A user has no row until the first
// balance change.
type Wallet struct {
	UserID            string    `gorm:"primaryKey;size:128"`
	Coins             int64     `gorm:"not null;default:0;check:chk_wallets_coins_non_negative,coins >= 0"`
	GiftReceivedCount int64     `gorm:"not null;default:0"`
	GiftReceivedValue int64     `gorm:"not null;default:0"`
	GiftRedeemedValue int64     `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
