package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	errs "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
)

// Messages for failed request fields, keyed by json name
var fieldMessages = map[string]string{
	"amount":      "Amount is required",
	"receiverUid": "Receiver UID is required",
	"roomId":      "Room ID is required",
	"giftId":      "Gift ID is required",
	"senderName":  "Sender name must be at most 64 characters",
	"receiptId":   "Receipt ID is required",
	"rate":        "Rate must be between 0 and 1",
	"itemId":      "Item ID is required",
}

var registerOnce sync.Once

// RegisterValidation makes validator report json field names
func RegisterValidation() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into obj, turning every
// failure into a domain validation error
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	// An empty body still reports which fields are missing
	if errors.Is(err, io.EOF) {
		if verr := binding.Validator.ValidateStruct(obj); verr != nil {
			err = verr
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]errs.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, errs.FieldError{Field: fe.Field(), Message: fieldMessage(fe.Field(), fe.Tag())})
		}
		return errs.NewValidationError(fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errs.NewValidationError(errs.FieldError{Field: typeErr.Field, Message: typeErr.Field + " has an invalid type"})
	}

	return errs.NewValidationError(errs.FieldError{Field: "body", Message: "Malformed JSON body"})
}

func fieldMessage(field, tag string) string {
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s failed on %s", field, tag)
}

// queryInt reads a numeric query parameter, returning 0 when absent or malformed
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}
