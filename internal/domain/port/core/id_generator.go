package core

// IDGenerator produces identifiers for new ledger records
type IDGenerator interface {
	NewID() string
}
