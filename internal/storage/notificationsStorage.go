package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertNotification = `INSERT INTO NOTIFICATIONS (id, user_id, kind, title, body)
							VALUES ($1, $2, $3, $4, $5)
							RETURNING id, user_id, kind, title, body, read, created_at;`
	GetNotificationsByUser = `SELECT id, user_id, kind, title, body, read, created_at
							FROM NOTIFICATIONS WHERE user_id=$1 ORDER BY read, created_at DESC;`
	GetNotificationsAfter = `SELECT id, user_id, kind, title, body, read, created_at
							FROM NOTIFICATIONS WHERE created_at > $1 ORDER BY created_at;`
	MarkNotificationsRead = `UPDATE NOTIFICATIONS SET read=TRUE WHERE user_id=$1 AND id = ANY($2);`
	MarkAllRead           = `UPDATE NOTIFICATIONS SET read=TRUE WHERE user_id=$1;`
)

type NotificationDatabase struct {
	DB *Database
}

// Store creation
func NewNotificationsStorage(db *Database) NotificationsStorage {
	return &NotificationDatabase{DB: db}
}

func (s *NotificationDatabase) AddNotification(ctx context.Context, notification models.NotificationData) (*models.NotificationData, error) {
	row := s.DB.Pool.QueryRow(ctx, InsertNotification,
		uuid.New().String(), notification.UserID, notification.Kind, notification.Title, notification.Body)
	created, err := scanNotification(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add notification: %w", err)
	}
	return created, nil
}

func (s *NotificationDatabase) GetNotifications(ctx context.Context, userID string) ([]models.NotificationData, error) {
	return s.queryNotifications(ctx, GetNotificationsByUser, userID)
}

// GetNotificationsAfter - fresh rows for the realtime feed poller
func (s *NotificationDatabase) GetNotificationsAfter(ctx context.Context, after time.Time) ([]models.NotificationData, error) {
	return s.queryNotifications(ctx, GetNotificationsAfter, after)
}

// MarkRead - idempotent, empty ids means everything the user has
func (s *NotificationDatabase) MarkRead(ctx context.Context, userID string, ids []string) error {
	var err error
	if len(ids) == 0 {
		_, err = s.DB.Pool.Exec(ctx, MarkAllRead, userID)
	} else {
		_, err = s.DB.Pool.Exec(ctx, MarkNotificationsRead, userID, ids)
	}
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (s *NotificationDatabase) queryNotifications(ctx context.Context, query string, args ...any) ([]models.NotificationData, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.NotificationData
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return notifications, fmt.Errorf("failed scan notification data: %w", err)
		}
		notifications = append(notifications, *notification)
	}
	return notifications, rows.Err()
}

func scanNotification(row pgx.Row) (*models.NotificationData, error) {
	var notification models.NotificationData
	err := row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.Kind,
		&notification.Title,
		&notification.Body,
		&notification.Read,
		&notification.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &notification, nil
}
