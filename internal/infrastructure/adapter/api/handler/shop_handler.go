package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
)

// ShopHandler handles shop-related HTTP requests
type ShopHandler struct {
	shopUseCase usecase.ShopUseCase
	logger      coreport.Logger
}

// NewShopHandler creates a new shop handler instance
func NewShopHandler(shopUseCase usecase.ShopUseCase, logger coreport.Logger) *ShopHandler {
	return &ShopHandler{
		shopUseCase: shopUseCase,
		logger:      logger,
	}
}

// ListItems handles GET /api/shop/items
func (h *ShopHandler) ListItems(c *gin.Context) {
	items, err := h.shopUseCase.ListItems(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.ShopItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewShopItemDTO(item))
	}

	c.JSON(http.StatusOK, dto.ShopItemsResponse{
		Success: true,
		Items:   out,
		Count:   len(out),
	})
}

// GetItem handles GET /api/shop/items/:itemId
func (h *ShopHandler) GetItem(c *gin.Context) {
	item, err := h.shopUseCase.GetItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ShopItemResponse{
		Success: true,
		Item:    dto.NewShopItemDTO(item),
	})
}

// Purchase handles POST /api/shop/purchase
func (h *ShopHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.shopUseCase.Purchase(c.Request.Context(), middleware.IdentityFrom(c).UID, req.ItemID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Success:    true,
		Message:    "Purchase successful",
		ItemID:     result.ItemID,
		ItemName:   result.ItemName,
		Price:      result.Price,
		NewBalance: result.NewBalance,
	})
}

// MyItems handles GET /api/shop/my-items
func (h *ShopHandler) MyItems(c *gin.Context) {
	grants, err := h.shopUseCase.ListOwnedItems(c.Request.Context(), middleware.IdentityFrom(c).UID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.OwnedItemsResponse{
		Success: true,
		Items:   dto.NewOwnedItemDTOs(grants),
		Count:   len(grants),
	})
}
