package models

import "time"

type ChatMessage struct {
	ID          int       `json:"id"`
	SenderID    int       `json:"sender_id"`
	SenderName  string    `json:"sender_name"`
	RecipientID int       `json:"recipient_id"` // 0 = office broadcast room
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

type SendChatMessageRequest struct {
	RecipientID int    `json:"recipient_id"`
	Body        string `json:"body"`
}
