package services

import (
	"context"
	"fmt"

	"poultry-backend/internal/models"
	"poultry-backend/internal/repositories"
)

type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
}

func NewNotificationService(notificationRepo *repositories.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID int) ([]models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}

func (s *NotificationService) RecentActivity(ctx context.Context, userID, limit int) ([]models.Notification, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.notificationRepo.RecentActivity(ctx, userID, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id int) error {
	return s.notificationRepo.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID int) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// RecordActivity writes an activity notice for every active user, for
// example when a dispatch batch is edited after the fact.
func (s *NotificationService) RecordActivity(ctx context.Context, title, body, branch string) error {
	return s.notificationRepo.CreateForAllUsers(ctx, models.NotificationActivity, title, body, branch)
}

// SendLowStock lets the service double as an alert sink: besides the
// external channel, every active user gets an in-app notice.
func (s *NotificationService) SendLowStock(ctx context.Context, branch string, currentStock int, trayEquivalent float64) error {
	title := "Low egg stock: " + branch
	body := fmt.Sprintf("Current stock at %s is %d eggs (%.1f trays), below the configured threshold.",
		branch, currentStock, trayEquivalent)
	return s.notificationRepo.CreateForAllUsers(ctx, models.NotificationLowStock, title, body, branch)
}
