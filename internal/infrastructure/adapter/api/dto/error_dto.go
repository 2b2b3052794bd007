package dto

import errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Details []errs.FieldError `json:"details,omitempty"`
}
