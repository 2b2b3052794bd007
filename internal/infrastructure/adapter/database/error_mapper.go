package database

import (
	"errors"

	domainErr "github.com/amirhossein-jamali/coin-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/repository"
)

// ErrorMapper maps database errors to domain errors and decides which
// failures are worth another attempt
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error. Errors that already
// belong to the domain pass through untouched.
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if domainErr.IsClientError(err) ||
		errors.Is(err, domainErr.ErrTransactionConflict) ||
		errors.Is(err, domainErr.ErrDatabaseConnection) ||
		errors.Is(err, domainErr.ErrDuplicateRecord) {
		return err
	}

	return m.classifier.Wrap(operation, err)
}

// IsRetryable reports whether the whole transaction may be replayed
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil || domainErr.IsClientError(err) {
		return false
	}
	return errors.Is(err, domainErr.ErrTransactionConflict) ||
		m.classifier.IsConflictError(err) ||
		m.classifier.IsTransientError(err)
}
