package entity

import (
	"errors"
	"math"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedeemValue(t *testing.T) {
	testCases := []struct {
		name     string
		price    int64
		rate     float64
		expected int64
		err      error
	}{
		{"full rate", 15, 1, 15, nil},
		{"half rounds up", 15, 0.5, 8, nil},
		{"rounds down below half", 10, 0.33, 3, nil},
		{"rate above one is clamped", 20, 1.7, 20, nil},
		{"negative rate clamps to zero", 20, -1, 0, errs.ErrInvalidRedeemValue},
		{"zero rate", 20, 0, 0, errs.ErrInvalidRedeemValue},
		{"tiny rate rounds to zero", 10, 0.01, 0, errs.ErrInvalidRedeemValue},
		{"NaN rate", 10, math.NaN(), 0, errs.ErrInvalidRedeemValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := RedeemValue(tc.price, tc.rate)

			if tc.err != nil {
				assert.True(t, errors.Is(err, tc.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestGiftReceipt_Redeem(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	redeemedAt := created.Add(time.Hour)
	receipt := NewGiftReceipt("r-1", "bob", "alice", "Alice", "room-1",
		GiftSnapshot{ID: "tra-sua", Name: "Trà sữa", Price: 15, Icon: "🧋"}, created)

	assert.Equal(t, ReceiptUnread, receipt.Status)
	assert.False(t, receipt.Redeemed)

	require.NoError(t, receipt.Redeem(8, redeemedAt))
	assert.True(t, receipt.Redeemed)
	assert.Equal(t, ReceiptRead, receipt.Status)
	assert.Equal(t, int64(8), *receipt.RedeemValue)
	assert.Equal(t, redeemedAt, *receipt.RedeemedAt)

	err := receipt.Redeem(8, redeemedAt)
	assert.True(t, errors.Is(err, errs.ErrAlreadyRedeemed))
	assert.Equal(t, int64(8), *receipt.RedeemValue)
}

func TestReceiptStatus_IsValid(t *testing.T) {
	assert.True(t, ReceiptUnread.IsValid())
	assert.True(t, ReceiptRead.IsValid())
	assert.False(t, ReceiptStatus("archived").IsValid())
}
