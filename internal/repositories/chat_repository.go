package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
)

type ChatRepository struct {
	DB *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) Save(ctx context.Context, m *models.ChatMessage) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO chat_messages (sender_id, sender_name, recipient_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, m.SenderID, m.SenderName, m.RecipientID, m.Body).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// ListConversation returns the two users' direct messages, or the
// office room history when otherID is zero.
func (r *ChatRepository) ListConversation(ctx context.Context, userID, otherID int, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	var (
		query string
		args  []interface{}
	)
	if otherID == 0 {
		query = `
			SELECT id, sender_id, sender_name, recipient_id, body, is_read, created_at
			FROM chat_messages
			WHERE recipient_id = 0
			ORDER BY created_at DESC
			LIMIT $1
		`
		args = []interface{}{limit}
	} else {
		query = `
			SELECT id, sender_id, sender_name, recipient_id, body, is_read, created_at
			FROM chat_messages
			WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
			ORDER BY created_at DESC
			LIMIT $3
		`
		args = []interface{}{userID, otherID, limit}
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SenderID, &m.SenderName, &m.RecipientID, &m.Body, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Oldest first for display
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatRepository) MarkConversationRead(ctx context.Context, userID, otherID int) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE chat_messages SET is_read = TRUE
		WHERE recipient_id = $1 AND sender_id = $2 AND is_read = FALSE
	`, userID, otherID)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return nil
}
