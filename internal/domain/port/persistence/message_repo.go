package persistence

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
)

// MessageRepository writes chat messages into rooms
type MessageRepository interface {
	Create(ctx context.Context, msg *entity.ChatMessage) error
}
