package idgen

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// UUIDGenerator issues random version 4 UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

var _ core.IDGenerator = (*UUIDGenerator)(nil)

// NewID returns a fresh UUID string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
