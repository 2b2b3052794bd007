package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"AuthRequired", ErrAuthRequired, "AUTH_REQUIRED"},
		{"TokenExpired", ErrTokenExpired, "TOKEN_EXPIRED"},
		{"InsufficientFunds", ErrInsufficientFunds, "INSUFFICIENT_FUNDS"},
		{"GiftNotFound", ErrGiftNotFound, "GIFT_NOT_FOUND"},
		{"ReceiptNotFound", ErrReceiptNotFound, "RECEIPT_NOT_FOUND"},
		{"ItemNotFound", ErrItemNotFound, "ITEM_NOT_FOUND"},
		{"AlreadyRedeemed", ErrAlreadyRedeemed, "ALREADY_REDEEMED"},
		{"AlreadyOwned", ErrItemAlreadyOwned, "ITEM_ALREADY_OWNED"},
		{"RateLimit", ErrRateLimitExceeded, "RATE_LIMIT_EXCEEDED"},
		{"UnknownError", errors.New("unknown error"), "INTERNAL_ERROR"},
		{"DatabaseError", ErrDatabaseConnection, "INTERNAL_ERROR"},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrCannotGiftSelf), "CANNOT_GIFT_SELF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if code := ErrorCode(tc.err); code != tc.expected {
				t.Errorf("ErrorCode(%v) = %s, want %s", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError("uid-1", 5, 20)

	expectedMsg := "insufficient funds for user uid-1: required 20, available 5"
	if err.Error() != expectedMsg {
		t.Errorf("Error() = %s, want %s", err.Error(), expectedMsg)
	}
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("errors.Is(err, ErrInsufficientFunds) should be true")
	}
	if !IsInsufficientFundsError(fmt.Errorf("purchase: %w", err)) {
		t.Error("IsInsufficientFundsError should see through wrapping")
	}

	fields := LogFieldsOf(err)
	if fields["balance"] != int64(5) || fields["amount"] != int64(20) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestCoinLimitError(t *testing.T) {
	err := NewCoinLimitError("uid-1", 9990, 20, 10000)

	if !errors.Is(err, ErrCoinLimitExceeded) {
		t.Error("errors.Is(err, ErrCoinLimitExceeded) should be true")
	}
	if ErrorCode(err) != CodeCoinLimitExceeded {
		t.Errorf("ErrorCode = %s, want %s", ErrorCode(err), CodeCoinLimitExceeded)
	}
}

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError("uid-1", "topup", "2024-05-01", 11, 10)

	if !IsRateLimitError(err) {
		t.Error("IsRateLimitError should be true")
	}
	if ErrorCode(err) != CodeRateLimitExceeded {
		t.Errorf("ErrorCode = %s, want %s", ErrorCode(err), CodeRateLimitExceeded)
	}
	fields := LogFieldsOf(err)
	if fields["action"] != "topup" || fields["count"] != int64(11) {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(FieldError{Field: "amount", Message: "must be between 1 and 1000"})

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) should be true")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) || len(ve.Fields) != 1 {
		t.Fatalf("expected one field error, got %v", err)
	}
	if ErrorCode(err) != CodeValidationFailed {
		t.Errorf("ErrorCode = %s, want %s", ErrorCode(err), CodeValidationFailed)
	}
}

func TestErrorHelpers(t *testing.T) {
	if !IsAuthError(ErrTokenExpired) || IsAuthError(ErrItemNotFound) {
		t.Error("IsAuthError misclassified")
	}
	if !IsNotFoundError(ErrReceiptNotFound) || IsNotFoundError(ErrAlreadyRedeemed) {
		t.Error("IsNotFoundError misclassified")
	}
	if IsClientError(errors.New("boom")) {
		t.Error("unknown errors must not be client errors")
	}
	if !IsTransactionConflict(fmt.Errorf("commit: %w", ErrTransactionConflict)) {
		t.Error("IsTransactionConflict should see through wrapping")
	}
}
