package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"poultry-backend/internal/models"
)

type NotificationRepository struct {
	DB *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	err := r.DB.QueryRow(ctx, `
		INSERT INTO notifications (user_id, kind, title, body, branch)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, n.UserID, n.Kind, n.Title, n.Body, n.Branch).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// CreateForAllUsers fans one notice out to every active user.
func (r *NotificationRepository) CreateForAllUsers(ctx context.Context, kind, title, body, branch string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO notifications (user_id, kind, title, body, branch)
		SELECT id, $1, $2, $3, $4 FROM users WHERE is_active = TRUE
	`, kind, title, body, branch)
	if err != nil {
		return fmt.Errorf("failed to fan out notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID int) ([]models.Notification, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, kind, title, body, COALESCE(branch, ''), is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 100
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.Branch, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// RecentActivity returns the caller's newest activity notices for the
// dashboard feed.
func (r *NotificationRepository) RecentActivity(ctx context.Context, userID, limit int) ([]models.Notification, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT id, user_id, kind, title, body, COALESCE(branch, ''), is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC
		LIMIT $3
	`, userID, models.NotificationActivity, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Title, &n.Body, &n.Branch, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id int) error {
	tag, err := r.DB.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %d not found", id)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int) error {
	_, err := r.DB.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
