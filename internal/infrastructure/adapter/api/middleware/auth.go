package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/identity"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
)

const contextIdentityKey = "identity"

const bearerPrefix = "Bearer "

// Auth verifies the bearer token and attaches the caller identity to the context
func Auth(verifier identity.TokenVerifier, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, errs.ErrAuthRequired)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			abortUnauthorized(c, errs.ErrInvalidToken)
			return
		}

		id, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Authentication failed", map[string]any{
				"path":       c.Request.URL.Path,
				"error":      err.Error(),
				"request_id": coreport.RequestIDFromContext(c.Request.Context()),
			})
			abortUnauthorized(c, err)
			return
		}

		c.Set(contextIdentityKey, id)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	var body dto.ErrorResponse
	switch {
	case errors.Is(err, errs.ErrAuthRequired):
		body = dto.ErrorResponse{
			Error:   "Unauthorized",
			Code:    errs.CodeAuthRequired,
			Message: "Authorization header with Bearer token is required",
		}
	case errors.Is(err, errs.ErrInvalidToken):
		body = dto.ErrorResponse{
			Error:   "Unauthorized",
			Code:    errs.CodeInvalidToken,
			Message: "Token is missing",
		}
	case errors.Is(err, errs.ErrTokenExpired):
		body = dto.ErrorResponse{
			Error:   "Token expired",
			Code:    errs.CodeTokenExpired,
			Message: "Please refresh your token and try again",
		}
	default:
		body = dto.ErrorResponse{
			Error:   "Unauthorized",
			Code:    errs.CodeAuthFailed,
			Message: "Invalid authentication token",
		}
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, body)
}

// IdentityFrom returns the verified caller, or nil on unauthenticated routes
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(contextIdentityKey)
	if !ok {
		return nil
	}
	id, _ := v.(*entity.Identity)
	return id
}
