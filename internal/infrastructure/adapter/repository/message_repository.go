package repository

import (
	"context"

	"github.com/amirhossein-jamali/coin-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/coin-ledger/internal/infrastructure/adapter/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MessageRepository implements persistence.MessageRepository using GORM
type MessageRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewMessageRepository creates a new MessageRepository instance
func NewMessageRepository(db *gorm.DB, logger coreport.Logger) *MessageRepository {
	return &MessageRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts a chat message
func (r *MessageRepository) Create(ctx context.Context, msg *entity.ChatMessage) error {
	readBy := msg.ReadBy
	if readBy == nil {
		readBy = []string{}
	}

	msgModel := model.ChatMessage{
		ID:        msg.ID,
		RoomID:    msg.RoomID,
		SenderID:  msg.SenderID,
		ToUserID:  msg.ToUserID,
		Type:      msg.Type,
		Text:      msg.Text,
		Status:    msg.Status,
		ReadBy:    datatypes.NewJSONSlice(readBy),
		CreatedAt: msg.CreatedAt,
	}
	if msg.Gift != nil {
		snapshot := snapshotToModel(*msg.Gift)
		msgModel.Gift = datatypes.NewJSONType(&snapshot)
	}

	if err := r.db.WithContext(ctx).Create(&msgModel).Error; err != nil {
		r.logger.Error("Database error when creating chat message", map[string]any{
			"message_id": msg.ID,
			"room_id":    msg.RoomID,
			"error":      err.Error(),
		})
		return r.errorClassifier.Wrap("create chat message", err)
	}
	return nil
}
