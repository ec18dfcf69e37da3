package services

import (
	"context"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"go.uber.org/zap"
)

// Notifier - fire-and-forget notification sink. Delivery problems are logged,
// never propagated into the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, userID string, kind string, title string, body string)
}

type NotificationsService interface {
	Notifier
	GetNotifications(ctx context.Context, userID string) ([]models.NotificationData, error)
	MarkRead(ctx context.Context, userID string, ids []string) error
}

type Notifications struct {
	Storage storage.NotificationsStorage
}

// Service creation
func NewNotifications(storage storage.NotificationsStorage) NotificationsService {
	return &Notifications{Storage: storage}
}

func (s *Notifications) Notify(ctx context.Context, userID string, kind string, title string, body string) {
	_, err := s.Storage.AddNotification(ctx, models.NotificationData{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
	})
	if err != nil {
		logger.Error("Failed to add notification", zap.Error(err))
	}
}

func (s *Notifications) GetNotifications(ctx context.Context, userID string) ([]models.NotificationData, error) {
	notifications, err := s.Storage.GetNotifications(ctx, userID)
	if err != nil {
		logger.Error("Failed to get notifications:", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Notifications) MarkRead(ctx context.Context, userID string, ids []string) error {
	if err := s.Storage.MarkRead(ctx, userID, ids); err != nil {
		logger.Error("Failed to mark notifications read:", zap.Error(err))
		return err
	}
	return nil
}
