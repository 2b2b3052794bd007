package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/middleware"
)

// WalletHandler handles wallet-related HTTP requests
type WalletHandler struct {
	walletUseCase usecase.WalletUseCase
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletUseCase usecase.WalletUseCase, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// GetBalance handles GET /api/wallet/balance
func (h *WalletHandler) GetBalance(c *gin.Context) {
	uid := middleware.IdentityFrom(c).UID

	w, err := h.walletUseCase.GetBalance(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		Success: true,
		Coins:   w.Coins(),
		UID:     uid,
	})
}

// Topup handles POST /api/wallet/topup
func (h *WalletHandler) Topup(c *gin.Context) {
	var req dto.AdjustRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.walletUseCase.Topup(c.Request.Context(), middleware.IdentityFrom(c).UID, *req.Amount, req.Metadata)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newAdjustResponse("Topup successful", result))
}

// Spend handles POST /api/wallet/spend
func (h *WalletHandler) Spend(c *gin.Context) {
	var req dto.AdjustRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := h.walletUseCase.Spend(c.Request.Context(), middleware.IdentityFrom(c).UID, *req.Amount, req.Metadata)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, newAdjustResponse("Spend successful", result))
}

// ListTransactions handles GET /api/wallet/transactions
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	limit, offset := wallet.NormalizePage(queryInt(c, "limit"), queryInt(c, "offset"))

	txs, err := h.walletUseCase.ListTransactions(c.Request.Context(), middleware.IdentityFrom(c).UID, limit, offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.TransactionsResponse{
		Success:      true,
		Transactions: dto.NewTransactionDTOs(txs),
		Count:        len(txs),
		Limit:        limit,
		Offset:       offset,
	})
}

func newAdjustResponse(message string, result *usecase.AdjustResult) dto.AdjustResponse {
	return dto.AdjustResponse{
		Success:       true,
		Message:       message,
		Amount:        result.Amount,
		NewBalance:    result.NewBalance,
		TransactionID: result.TransactionID,
	}
}
