package dto

import (
	"time"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// BalanceResponse represents the API response for a wallet balance
type BalanceResponse struct {
	Success bool   `json:"success"`
	Coins   int64  `json:"coins"`
	UID     string `json:"uid"`
}

// AdjustRequest is the body of a topup or spend
type AdjustRequest struct {
	Amount   *int64         `json:"amount" binding:"required"`
	Metadata map[string]any `json:"metadata"`
}

// AdjustResponse represents the API response for a committed topup or spend
type AdjustResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Amount        int64  `json:"amount"`
	NewBalance    int64  `json:"newBalance"`
	TransactionID string `json:"transactionId"`
}

// TransactionDTO is one ledger entry
type TransactionDTO struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"userId"`
	Type      entity.TransactionType `json:"type"`
	Amount    int64                  `json:"amount"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]any         `json:"metadata"`
}

// TransactionsResponse represents a page of the caller's ledger
type TransactionsResponse struct {
	Success      bool             `json:"success"`
	Transactions []TransactionDTO `json:"transactions"`
	Count        int              `json:"count"`
	Limit        int              `json:"limit"`
	Offset       int              `json:"offset"`
}

// NewTransactionDTOs maps ledger entries to their wire form
func NewTransactionDTOs(txs []*entity.CoinTransaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionDTO{
			ID:        tx.ID,
			UserID:    tx.UserID,
			Type:      tx.Type,
			Amount:    tx.Amount,
			CreatedAt: tx.CreatedAt,
			Metadata:  tx.Metadata,
		})
	}
	return out
}
