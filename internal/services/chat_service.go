package services

import (
	"context"
	"errors"

	"poultry-backend/internal/chat"
	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
)

type ChatService struct {
	chatRepo *repositories.ChatRepository
	userRepo *repositories.UserRepository
	hub      *chat.Hub
}

func NewChatService(chatRepo *repositories.ChatRepository, userRepo *repositories.UserRepository, hub *chat.Hub) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		userRepo: userRepo,
		hub:      hub,
	}
}

func (s *ChatService) Hub() *chat.Hub {
	return s.hub
}

// Send persists a message and pushes it to live connections. Recipient
// zero is the shared office room and reaches everyone.
func (s *ChatService) Send(ctx context.Context, senderID int, req *models.SendChatMessageRequest) (*models.ChatMessage, error) {
	if req.Body == "" {
		return nil, errors.New("message body is required")
	}
	if req.RecipientID < 0 {
		return nil, errors.New("invalid recipient")
	}

	sender, err := s.userRepo.Get(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if req.RecipientID != chat.OfficeRoomID {
		if _, err := s.userRepo.Get(ctx, req.RecipientID); err != nil {
			return nil, errors.New("recipient not found")
		}
	}

	msg := &models.ChatMessage{
		SenderID:    senderID,
		SenderName:  sender.Name,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}
	if err := s.chatRepo.Save(ctx, msg); err != nil {
		return nil, err
	}

	if msg.RecipientID == chat.OfficeRoomID {
		s.hub.Broadcast(msg)
	} else {
		s.hub.SendToUser(msg.RecipientID, msg)
		s.hub.SendToUser(msg.SenderID, msg)
	}
	return msg, nil
}

func (s *ChatService) Conversation(ctx context.Context, userID, otherID, limit int) ([]models.ChatMessage, error) {
	messages, err := s.chatRepo.ListConversation(ctx, userID, otherID, limit)
	if err != nil {
		return nil, err
	}
	if otherID != chat.OfficeRoomID {
		if err := s.chatRepo.MarkConversationRead(ctx, userID, otherID); err != nil {
			return nil, err
		}
	}
	return messages, nil
}

func (s *ChatService) OnlineUserIDs() []int {
	return s.hub.OnlineUserIDs()
}
