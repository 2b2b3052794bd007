package entity

import (
	"fmt"
	"math"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// ReceiptStatus is the read state of a gift receipt
type ReceiptStatus string

// Receipt statuses
const (
	ReceiptUnread ReceiptStatus = "unread"
	ReceiptRead   ReceiptStatus = "read"
)

// IsValid reports whether s is a known status
func (s ReceiptStatus) IsValid() bool {
	return s == ReceiptUnread || s == ReceiptRead
}

// GiftReceipt records one gift received by UserID
type GiftReceipt struct {
	ID          string
	UserID      string // receiver and owner
	FromUserID  string
	FromName    string
	RoomID      string
	Gift        GiftSnapshot
	CreatedAt   time.Time
	Status      ReceiptStatus
	Redeemed    bool
	RedeemedAt  *time.Time
	RedeemValue *int64
}

// NewGiftReceipt creates an unread, unredeemed receipt
func NewGiftReceipt(id, receiverID, senderID, senderName, roomID string, gift GiftSnapshot, createdAt time.Time) *GiftReceipt {
	return &GiftReceipt{
		ID:         id,
		UserID:     receiverID,
		FromUserID: senderID,
		FromName:   senderName,
		RoomID:     roomID,
		Gift:       gift,
		CreatedAt:  createdAt,
		Status:     ReceiptUnread,
	}
}

// ClampRate bounds a conversion rate to [0, 1]
func ClampRate(rate float64) float64 {
	return math.Max(0, math.Min(1, rate))
}

// RedeemValue converts a gift price at the given rate, rounding half up
func RedeemValue(price int64, rate float64) (int64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("%w: rate %v", errs.ErrInvalidRedeemValue, rate)
	}

	value := decimal.NewFromInt(price).
		Mul(decimal.NewFromFloat(ClampRate(rate))).
		Round(0).
		IntPart()

	if value <= 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidRedeemValue, value)
	}
	return value, nil
}

// Redeem marks the receipt as converted to coins. A receipt can be redeemed once.
func (r *GiftReceipt) Redeem(value int64, now time.Time) error {
	if r.Redeemed {
		return fmt.Errorf("%w: receipt %s", errs.ErrAlreadyRedeemed, r.ID)
	}

	r.Redeemed = true
	r.RedeemedAt = &now
	r.RedeemValue = &value
	r.Status = ReceiptRead
	return nil
}
