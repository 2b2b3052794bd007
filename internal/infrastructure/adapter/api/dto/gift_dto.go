package dto

import (
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// SendGiftRequest is the body of POST /api/gifts/send
type SendGiftRequest struct {
	ReceiverUID string `json:"receiverUid" binding:"required"`
	RoomID      string `json:"roomId" binding:"required"`
	GiftID      string `json:"giftId" binding:"required"`
	SenderName  string `json:"senderName" binding:"omitempty,max=64"`
}

// RedeemGiftRequest is the body of POST /api/gifts/redeem.
// Rate defaults to 1 when omitted.
type RedeemGiftRequest struct {
	ReceiptID string   `json:"receiptId" binding:"required"`
	Rate      *float64 `json:"rate" binding:"omitempty,min=0,max=1"`
}

// GiftDTO is a gift as shown to clients
type GiftDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Icon  string `json:"icon"`
}

// SendGiftResponse represents a committed gift send
type SendGiftResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Gift       GiftDTO `json:"gift"`
	Source     string  `json:"source"`
	MessageID  string  `json:"messageId"`
	ReceiptID  string  `json:"receiptId"`
	NewBalance int64   `json:"newBalance"`
}

// RedeemGiftResponse represents a committed redemption
type RedeemGiftResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	RedeemValue int64  `json:"redeemValue"`
	NewBalance  int64  `json:"newBalance"`
}

// ReceiptDTO is one received gift
type ReceiptDTO struct {
	ID          string     `json:"id"`
	FromUID     string     `json:"fromUid"`
	FromName    string     `json:"fromName"`
	RoomID      string     `json:"roomId"`
	Gift        GiftDTO    `json:"gift"`
	CreatedAt   time.Time  `json:"createdAt"`
	Status      string     `json:"status"`
	Redeemed    bool       `json:"redeemed"`
	RedeemedAt  *time.Time `json:"redeemedAt,omitempty"`
	RedeemValue *int64     `json:"redeemValue,omitempty"`
}

// ReceivedGiftsResponse lists the caller's received gifts
type ReceivedGiftsResponse struct {
	Success bool         `json:"success"`
	Gifts   []ReceiptDTO `json:"gifts"`
	Count   int          `json:"count"`
}

// NewGiftDTO maps a gift snapshot to its wire form
func NewGiftDTO(g entity.GiftSnapshot) GiftDTO {
	return GiftDTO{ID: g.ID, Name: g.Name, Price: g.Price, Icon: g.Icon}
}

// NewReceiptDTOs maps receipts to their wire form
func NewReceiptDTOs(receipts []*entity.GiftReceipt) []ReceiptDTO {
	out := make([]ReceiptDTO, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, ReceiptDTO{
			ID:          r.ID,
			FromUID:     r.FromUserID,
			FromName:    r.FromName,
			RoomID:      r.RoomID,
			Gift:        NewGiftDTO(r.Gift),
			CreatedAt:   r.CreatedAt,
			Status:      string(r.Status),
			Redeemed:    r.Redeemed,
			RedeemedAt:  r.RedeemedAt,
			RedeemValue: r.RedeemValue,
		})
	}
	return out
}
