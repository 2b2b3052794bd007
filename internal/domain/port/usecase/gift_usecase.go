package usecase

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// SendGiftRequest carries the input of a gift send
type SendGiftRequest struct {
	SenderID   string
	ReceiverID string
	RoomID     string
	GiftID     string
	SenderName string
}

// SendGiftResult is the outcome of a committed gift send
type SendGiftResult struct {
	Gift       entity.Gift
	Source     entity.GiftSource
	MessageID  string
	ReceiptID  string
	NewBalance int64
}

// RedeemGiftResult is the outcome of a committed redemption
type RedeemGiftResult struct {
	ReceiptID   string
	RedeemValue int64
	NewBalance  int64
}

// GiftUseCase defines gift exchange operations
type GiftUseCase interface {
	SendGift(ctx context.Context, req SendGiftRequest) (*SendGiftResult, error)
	RedeemGift(ctx context.Context, userID, receiptID string, rate float64) (*RedeemGiftResult, error)
	ListReceived(ctx context.Context, userID string, status entity.ReceiptStatus, limit int) ([]*entity.GiftReceipt, error)
}
