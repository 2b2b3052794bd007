package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
)

// GiftHandler handles gift-related HTTP requests
type GiftHandler struct {
	giftUseCase usecase.GiftUseCase
	logger      coreport.Logger
}

// NewGiftHandler creates a new gift handler instance
func NewGiftHandler(giftUseCase usecase.GiftUseCase, logger coreport.Logger) *GiftHandler {
	return &GiftHandler{
		giftUseCase: giftUseCase,
		logger:      logger,
	}
}

// Send handles POST /api/gifts/send
func (h *GiftHandler) Send(c *gin.Context) {
	var req dto.SendGiftRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.giftUseCase.SendGift(c.Request.Context(), usecase.SendGiftRequest{
		SenderID:   middleware.IdentityFrom(c).UID,
		ReceiverID: req.ReceiverUID,
		RoomID:     req.RoomID,
		GiftID:     req.GiftID,
		SenderName: req.SenderName,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SendGiftResponse{
		Success:    true,
		Message:    "Gift sent successfully",
		Gift:       dto.NewGiftDTO(result.Gift.Snapshot()),
		Source:     string(result.Source),
		MessageID:  result.MessageID,
		ReceiptID:  result.ReceiptID,
		NewBalance: result.NewBalance,
	})
}

// Redeem handles POST /api/gifts/redeem
func (h *GiftHandler) Redeem(c *gin.Context) {
	var req dto.RedeemGiftRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	rate := 1.0
	if req.Rate != nil {
		rate = *req.Rate
	}

	result, err := h.giftUseCase.RedeemGift(c.Request.Context(), middleware.IdentityFrom(c).UID, req.ReceiptID, rate)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.RedeemGiftResponse{
		Success:     true,
		Message:     "Gift redeemed successfully",
		RedeemValue: result.RedeemValue,
		NewBalance:  result.NewBalance,
	})
}

// Received handles GET /api/gifts/received
func (h *GiftHandler) Received(c *gin.Context) {
	status := entity.ReceiptStatus(c.Query("status"))

	receipts, err := h.giftUseCase.ListReceived(c.Request.Context(), middleware.IdentityFrom(c).UID, status, queryInt(c, "limit"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ReceivedGiftsResponse{
		Success: true,
		Gifts:   dto.NewReceiptDTOs(receipts),
		Count:   len(receipts),
	})
}
