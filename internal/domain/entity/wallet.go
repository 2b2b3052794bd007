package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// DefaultMaxCoins is the balance cap applied when none is configured
const DefaultMaxCoins int64 = 10000

// Wallet is the per-user coin balance together with the gift aggregates
// the receiver side accumulates
type Wallet struct {
	UserID            string
	coins             int64 // never negative, never above the cap (private)
	GiftReceivedCount int64
	GiftReceivedValue int64
	GiftRedeemedValue int64
	UpdatedAt         time.Time
	Exists            bool // false until the first adjustment is persisted
}

// NewWallet returns the implicit empty wallet of a user with no record yet
func NewWallet(userID string) *Wallet {
	return &Wallet{UserID: userID}
}

// RestoreWallet rebuilds a wallet from persisted state
func RestoreWallet(userID string, coins, receivedCount, receivedValue, redeemedValue int64, updatedAt time.Time) *Wallet {
	return &Wallet{
		UserID:            userID,
		coins:             coins,
		GiftReceivedCount: receivedCount,
		GiftReceivedValue: receivedValue,
		GiftRedeemedValue: redeemedValue,
		UpdatedAt:         updatedAt,
		Exists:            true,
	}
}

// Coins returns the current balance
func (w *Wallet) Coins() int64 {
	return w.coins
}

// Adjust applies a signed delta after checking both bounds.
// The wallet is left untouched when the check fails.
func (w *Wallet) Adjust(delta, maxCoins int64, now time.Time) error {
	next := w.coins + delta
	if next < 0 {
		return errs.NewInsufficientFundsError(w.UserID, w.coins, -delta)
	}
	if maxCoins > 0 && next > maxCoins {
		return errs.NewCoinLimitError(w.UserID, w.coins, delta, maxCoins)
	}

	w.coins = next
	w.UpdatedAt = now
	return nil
}

// Debit removes amount from the balance
func (w *Wallet) Debit(amount int64, now time.Time) error {
	return w.Adjust(-amount, 0, now)
}

// Credit adds amount to the balance, honoring the cap
func (w *Wallet) Credit(amount, maxCoins int64, now time.Time) error {
	return w.Adjust(amount, maxCoins, now)
}

// RecordRedemption adds value to the lifetime redeemed aggregate
func (w *Wallet) RecordRedemption(value int64) {
	w.GiftRedeemedValue += value
}
