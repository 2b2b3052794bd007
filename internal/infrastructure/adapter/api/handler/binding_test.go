package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/api/dto"
)

func newJSONContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func fieldsOf(t *testing.T, err error) []errs.FieldError {
	t.Helper()
	var validationErr *errs.ValidationError
	require.True(t, errors.As(err, &validationErr), "got %v", err)
	return validationErr.Fields
}

func TestBindJSON(t *testing.T) {
	RegisterValidation()

	t.Run("valid body", func(t *testing.T) {
		var req dto.RedeemGiftRequest
		err := bindJSON(newJSONContext(`{"receiptId":"r-1","rate":0.5}`), &req)

		require.NoError(t, err)
		assert.Equal(t, "r-1", req.ReceiptID)
		assert.Equal(t, 0.5, *req.Rate)
	})

	t.Run("missing fields use json names", func(t *testing.T) {
		var req dto.SendGiftRequest
		fields := fieldsOf(t, bindJSON(newJSONContext(`{"receiverUid":"bob"}`), &req))

		require.Len(t, fields, 2)
		assert.Equal(t, errs.FieldError{Field: "roomId", Message: "Room ID is required"}, fields[0])
		assert.Equal(t, "giftId", fields[1].Field)
	})

	t.Run("empty body reports required fields", func(t *testing.T) {
		var req dto.PurchaseRequest
		fields := fieldsOf(t, bindJSON(newJSONContext(``), &req))

		require.Len(t, fields, 1)
		assert.Equal(t, "itemId", fields[0].Field)
	})

	t.Run("rate out of range", func(t *testing.T) {
		var req dto.RedeemGiftRequest
		fields := fieldsOf(t, bindJSON(newJSONContext(`{"receiptId":"r-1","rate":1.5}`), &req))

		assert.Equal(t, "Rate must be between 0 and 1", fields[0].Message)
	})

	t.Run("wrong type", func(t *testing.T) {
		var req dto.AdjustRequest
		fields := fieldsOf(t, bindJSON(newJSONContext(`{"amount":"ten"}`), &req))

		assert.Equal(t, "amount", fields[0].Field)
	})

	t.Run("malformed json", func(t *testing.T) {
		var req dto.AdjustRequest
		fields := fieldsOf(t, bindJSON(newJSONContext(`{"amount":`), &req))

		assert.Equal(t, "body", fields[0].Field)
	})
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=20&offset=abc", nil)

	assert.Equal(t, 20, queryInt(c, "limit"))
	assert.Equal(t, 0, queryInt(c, "offset"))
	assert.Equal(t, 0, queryInt(c, "missing"))
}
