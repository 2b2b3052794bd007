package model

import (
	"time"

	"gorm.io/datatypes"
)

// CoinTransaction is one row of the append-only ledger
type CoinTransaction struct {
	ID        string            `gorm:"primaryKey;size:36"`
	UserID    string            `gorm:"not null;size:128;index:idx_coin_transactions_user_created,priority:1"`
	Type      string            `gorm:"not null;size:20"`
	Amount    int64             `gorm:"not null"`
	CreatedAt time.Time         `gorm:"not null;index:idx_coin_transactions_user_created,priority:2,sort:desc"`
	// Seq numbers a user's entries in insertion order and breaks created_at ties.
	Seq       int64             `gorm:"not null;default:0;index:idx_coin_transactions_user_created,priority:3,sort:desc"`
	Metadata  datatypes.JSONMap `gorm:"not null"`
}

// TableName specifies the table name for CoinTransaction
func (CoinTransaction) TableName() string {
	return "coin_transactions"
}
