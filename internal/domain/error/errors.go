package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// Authentication
	CodeAuthRequired = "AUTH_REQUIRED"
	CodeInvalidToken = "INVALID_TOKEN"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeAuthFailed   = "AUTH_FAILED"

	// Validation
	CodeValidationFailed = "VALIDATION_FAILED"

	// Ledger business rules
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeCoinLimitExceeded  = "COIN_LIMIT_EXCEEDED"
	CodeCannotGiftSelf     = "CANNOT_GIFT_SELF"
	CodeGiftNotFound       = "GIFT_NOT_FOUND"
	CodeGiftInactive       = "GIFT_INACTIVE"
	CodeInvalidGiftPrice   = "INVALID_GIFT_PRICE"
	CodeReceiptNotFound    = "RECEIPT_NOT_FOUND"
	CodeAlreadyRedeemed    = "ALREADY_REDEEMED"
	CodeInvalidRedeemValue = "INVALID_REDEEM_VALUE"
	CodeItemNotFound       = "ITEM_NOT_FOUND"
	CodeItemInactive       = "ITEM_INACTIVE"
	CodeInvalidPrice       = "INVALID_PRICE"
	CodeItemAlreadyOwned   = "ITEM_ALREADY_OWNED"

	// Throttling
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeTooManyRequests   = "TOO_MANY_REQUESTS"

	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// Base error types
var (
	// ErrAuthRequired is returned when the Authorization header is missing or not a Bearer header
	ErrAuthRequired = errors.New("authorization header with Bearer token is required")

	// ErrInvalidToken is returned when the Bearer header carries no token
	ErrInvalidToken = errors.New("token is missing")

	// ErrTokenExpired is returned when the identity token validity window has elapsed
	ErrTokenExpired = errors.New("token expired")

	// ErrAuthFailed is returned when the token signature or claims are invalid
	ErrAuthFailed = errors.New("invalid authentication token")

	// ErrValidation is returned when a request body or query fails validation
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a debit would make the balance negative
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCoinLimitExceeded is returned when a credit would push the balance above the cap
	ErrCoinLimitExceeded = errors.New("coin limit exceeded")

	ErrCannotGiftSelf     = errors.New("cannot gift self")
	ErrGiftNotFound       = errors.New("gift not found")
	ErrGiftInactive       = errors.New("gift is inactive")
	ErrInvalidGiftPrice   = errors.New("invalid gift price")
	ErrReceiptNotFound    = errors.New("receipt not found")
	ErrAlreadyRedeemed    = errors.New("already redeemed")
	ErrInvalidRedeemValue = errors.New("invalid redeem value")

	ErrItemNotFound     = errors.New("item not found")
	ErrItemInactive     = errors.New("item is not available")
	ErrInvalidPrice     = errors.New("invalid item price")
	ErrItemAlreadyOwned = errors.New("item already owned")

	// ErrRateLimitExceeded is returned when a per-user daily action limit is exceeded
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrTransactionConflict is returned when a serializable transaction lost a race
	ErrTransactionConflict = errors.New("transaction conflict")

	// ErrDuplicateRecord is returned when a unique constraint is violated
	ErrDuplicateRecord = errors.New("record already exists")
)

// codedError pairs a sentinel with its wire code
type codedError struct {
	err  error
	code string
}

var taxonomy = []codedError{
	{ErrAuthRequired, CodeAuthRequired},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrTokenExpired, CodeTokenExpired},
	{ErrAuthFailed, CodeAuthFailed},
	{ErrValidation, CodeValidationFailed},
	{ErrInsufficientFunds, CodeInsufficientFunds},
	{ErrCoinLimitExceeded, CodeCoinLimitExceeded},
	{ErrCannotGiftSelf, CodeCannotGiftSelf},
	{ErrGiftNotFound, CodeGiftNotFound},
	{ErrGiftInactive, CodeGiftInactive},
	{ErrInvalidGiftPrice, CodeInvalidGiftPrice},
	{ErrReceiptNotFound, CodeReceiptNotFound},
	{ErrAlreadyRedeemed, CodeAlreadyRedeemed},
	{ErrInvalidRedeemValue, CodeInvalidRedeemValue},
	{ErrItemNotFound, CodeItemNotFound},
	{ErrItemInactive, CodeItemInactive},
	{ErrInvalidPrice, CodeInvalidPrice},
	{ErrItemAlreadyOwned, CodeItemAlreadyOwned},
	{ErrRateLimitExceeded, CodeRateLimitExceeded},
	{ErrNotFound, CodeNotFound},
}

func lookup(err error) (codedError, bool) {
	for _, c := range taxonomy {
		if errors.Is(err, c.err) {
			return c, true
		}
	}
	return codedError{}, false
}

// ErrorCode returns the standardized API code for a known error
func ErrorCode(err error) string {
	if c, ok := lookup(err); ok {
		return c.code
	}
	return CodeInternalError
}

// IsClientError reports whether err belongs to the known taxonomy, i.e. it is safe
// to show its message to the caller
func IsClientError(err error) bool {
	_, ok := lookup(err)
	return ok
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	UserID  string
	Balance int64
	Amount  int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: required %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"balance":    e.Balance,
		"amount":     e.Amount,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID string, balance, amount int64) error {
	return &InsufficientFundsError{UserID: userID, Balance: balance, Amount: amount}
}

// CoinLimitError is returned when a credit would exceed the configured cap
type CoinLimitError struct {
	UserID   string
	Balance  int64
	Amount   int64
	MaxCoins int64
}

// Error implements the error interface
func (e *CoinLimitError) Error() string {
	return fmt.Sprintf("coin limit exceeded for user %s: balance %d + %d > %d",
		e.UserID, e.Balance, e.Amount, e.MaxCoins)
}

// Is checks if the target error is an ErrCoinLimitExceeded
func (e *CoinLimitError) Is(target error) bool {
	return target == ErrCoinLimitExceeded
}

// LogFields returns a map of fields for structured logging
func (e *CoinLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "coin_limit_exceeded",
		"user_id":    e.UserID,
		"balance":    e.Balance,
		"amount":     e.Amount,
		"max_coins":  e.MaxCoins,
		"error_code": CodeCoinLimitExceeded,
	}
}

// NewCoinLimitError creates a new coin limit error
func NewCoinLimitError(userID string, balance, amount, maxCoins int64) error {
	return &CoinLimitError{UserID: userID, Balance: balance, Amount: amount, MaxCoins: maxCoins}
}

// RateLimitError carries the counter state of a rejected action
type RateLimitError struct {
	UserID    string
	Action    string
	Day       string
	Count     int64
	MaxPerDay int64
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for user %s action %s on %s: %d/%d",
		e.UserID, e.Action, e.Day, e.Count, e.MaxPerDay)
}

// Is checks if the target error is an ErrRateLimitExceeded
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimitExceeded
}

// LogFields returns a map of fields for structured logging
func (e *RateLimitError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "rate_limit_exceeded",
		"user_id":     e.UserID,
		"action":      e.Action,
		"day":         e.Day,
		"count":       e.Count,
		"max_per_day": e.MaxPerDay,
		"error_code":  CodeRateLimitExceeded,
	}
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(userID, action, day string, count, maxPerDay int64) error {
	return &RateLimitError{UserID: userID, Action: action, Day: day, Count: count, MaxPerDay: maxPerDay}
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level validation failures
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation.Error(), e.Fields[0].Field, e.Fields[0].Message)
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error from field failures
func NewValidationError(fields ...FieldError) error {
	return &ValidationError{Fields: fields}
}

// LogFielder is implemented by errors that carry structured logging context
type LogFielder interface {
	LogFields() map[string]any
}

// LogFieldsOf returns the structured fields of err, or a minimal map
func LogFieldsOf(err error) map[string]any {
	var lf LogFielder
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsRateLimitError checks if the error is a daily rate limit rejection
func IsRateLimitError(err error) bool {
	return errors.Is(err, ErrRateLimitExceeded)
}

// IsAuthError checks if the error is any authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuthRequired) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrAuthFailed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrGiftNotFound) ||
		errors.Is(err, ErrReceiptNotFound) ||
		errors.Is(err, ErrItemNotFound)
}

// IsTransactionConflict checks if the error is a lost serialization race
func IsTransactionConflict(err error) bool {
	return errors.Is(err, ErrTransactionConflict)
}
