package entity

import "time"

// MessageType of a chat message written by this service
const MessageTypeGift = "gift"

// MessageStatusSent is the initial delivery status of a message
const MessageStatusSent = "sent"

// ChatMessage is a message posted into a chat room
type ChatMessage struct {
	ID        string
	RoomID    string
	SenderID  string
	ToUserID  string
	Type      string
	Text      string
	Gift      *GiftSnapshot
	CreatedAt time.Time
	Status    string
	ReadBy    []string
}

// NewGiftMessage builds the announcement posted when a gift is sent
func NewGiftMessage(id, roomID, senderID, receiverID, senderName string, gift Gift, createdAt time.Time) *ChatMessage {
	snapshot := gift.Snapshot()
	return &ChatMessage{
		ID:        id,
		RoomID:    roomID,
		SenderID:  senderID,
		ToUserID:  receiverID,
		Type:      MessageTypeGift,
		Text:      GiftAnnouncement(senderName, gift),
		Gift:      &snapshot,
		CreatedAt: createdAt,
		Status:    MessageStatusSent,
		ReadBy:    []string{},
	}
}
