package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
)

// Client facing messages by error code
var publicMessages = map[string]string{
	errs.CodeAuthRequired:       "Unauthorized",
	errs.CodeInvalidToken:       "Unauthorized",
	errs.CodeTokenExpired:       "Token expired",
	errs.CodeAuthFailed:         "Unauthorized",
	errs.CodeInsufficientFunds:  "Insufficient funds",
	errs.CodeCoinLimitExceeded:  "Coin limit exceeded",
	errs.CodeCannotGiftSelf:     "Cannot gift self",
	errs.CodeGiftNotFound:       "Gift not found",
	errs.CodeGiftInactive:       "Gift is inactive",
	errs.CodeInvalidGiftPrice:   "Invalid gift price",
	errs.CodeReceiptNotFound:    "Receipt not found",
	errs.CodeAlreadyRedeemed:    "Already redeemed",
	errs.CodeInvalidRedeemValue: "Invalid redeem value",
	errs.CodeItemNotFound:       "Item not found",
	errs.CodeItemInactive:       "Item is not available",
	errs.CodeInvalidPrice:       "Invalid item price",
	errs.CodeItemAlreadyOwned:   "Item already owned",
	errs.CodeRateLimitExceeded:  "Rate limit exceeded",
	errs.CodeNotFound:           "Resource not found",
}

// HTTP status by error code. Codes missing here answer 500.
var statusByCode = map[string]int{
	errs.CodeAuthRequired:       http.StatusUnauthorized,
	errs.CodeInvalidToken:       http.StatusUnauthorized,
	errs.CodeTokenExpired:       http.StatusUnauthorized,
	errs.CodeAuthFailed:         http.StatusUnauthorized,
	errs.CodeValidationFailed:   http.StatusBadRequest,
	errs.CodeInsufficientFunds:  http.StatusBadRequest,
	errs.CodeCoinLimitExceeded:  http.StatusBadRequest,
	errs.CodeCannotGiftSelf:     http.StatusBadRequest,
	errs.CodeGiftNotFound:       http.StatusNotFound,
	errs.CodeGiftInactive:       http.StatusBadRequest,
	errs.CodeInvalidGiftPrice:   http.StatusBadRequest,
	errs.CodeReceiptNotFound:    http.StatusNotFound,
	errs.CodeAlreadyRedeemed:    http.StatusBadRequest,
	errs.CodeInvalidRedeemValue: http.StatusBadRequest,
	errs.CodeItemNotFound:       http.StatusNotFound,
	errs.CodeItemInactive:       http.StatusBadRequest,
	errs.CodeInvalidPrice:       http.StatusBadRequest,
	errs.CodeItemAlreadyOwned:   http.StatusConflict,
	errs.CodeRateLimitExceeded:  http.StatusTooManyRequests,
	errs.CodeNotFound:           http.StatusNotFound,
}

// HTTPStatus returns the HTTP status matching the failure kind of err
func HTTPStatus(err error) int {
	if status, ok := statusByCode[errs.ErrorCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// NewErrorResponse maps err to its HTTP status and response body.
// Errors outside the domain taxonomy never leak their message.
func NewErrorResponse(err error) (int, dto.ErrorResponse) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Code:    errs.CodeValidationFailed,
			Details: validationErr.Fields,
		}
	}

	if !errs.IsClientError(err) {
		return http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Internal server error",
			Code:  errs.CodeInternalError,
		}
	}

	code := errs.ErrorCode(err)
	return HTTPStatus(err), dto.ErrorResponse{
		Error: publicMessages[code],
		Code:  code,
	}
}

// ErrorHandler recovers from panics and renders the last error attached
// to the context by a handler
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      rec,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": coreport.RequestIDFromContext(c.Request.Context()),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: "Internal server error",
					Code:  errs.CodeInternalError,
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, body := NewErrorResponse(err)
		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", map[string]any{
				"error":      err.Error(),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
		}
		c.AbortWithStatusJSON(status, body)
	}
}

// NotFound answers requests that match no route
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(HTTPStatus(errs.ErrNotFound), dto.ErrorResponse{
			Error: "Endpoint not found",
			Code:  errs.ErrorCode(errs.ErrNotFound),
		})
	}
}
