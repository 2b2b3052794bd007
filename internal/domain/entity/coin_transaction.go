package entity

import (
	"time"
)

// TransactionType classifies a ledger entry
type TransactionType string

// Transaction types
const (
	TransactionTopup    TransactionType = "topup"
	TransactionSpend    TransactionType = "spend"
	TransactionPurchase TransactionType = "purchase"
	TransactionRedeem   TransactionType = "redeem"
)

// Metadata kinds used to tell entries of the same type apart
const (
	MetadataKindGift       = "gift"
	MetadataKindGiftRedeem = "gift_redeem"
)

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTopup, TransactionSpend, TransactionPurchase, TransactionRedeem:
		return true
	}
	return false
}

// CoinTransaction is an immutable record of one balance change
type CoinTransaction struct {
	ID        string
	UserID    string
	Type      TransactionType
	Amount    int64 // signed: debits are negative
	CreatedAt time.Time
	Metadata  map[string]any
}

// NewCoinTransaction creates a ledger entry
func NewCoinTransaction(id, userID string, txType TransactionType, amount int64, metadata map[string]any, createdAt time.Time) *CoinTransaction {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &CoinTransaction{
		ID:        id,
		UserID:    userID,
		Type:      txType,
		Amount:    amount,
		CreatedAt: createdAt,
		Metadata:  metadata,
	}
}
