package model

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessage is a message posted into a chat room
type ChatMessage struct {
	ID        string                            `gorm:"primaryKey;size:36"`
	RoomID    string                            `gorm:"not null;size:128;index:idx_chat_messages_room_created,priority:1"`
	SenderID  string                            `gorm:"not null;size:128"`
	ToUserID  string                            `gorm:"size:128"`
	Type      string                            `gorm:"not null;size:20"`
	Text      string                            `gorm:"type:text"`
	Gift      datatypes.JSONType[*GiftSnapshot] `gorm:""`
	Status    string                            `gorm:"not null;size:20"`
	ReadBy    datatypes.JSONSlice[string]       `gorm:"not null"`
	CreatedAt time.Time                         `gorm:"not null;index:idx_chat_messages_room_created,priority:2"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
