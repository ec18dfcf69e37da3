package models

import "time"

// Notification kinds
const (
	NotificationOrderCompleted     = "order_completed"
	NotificationWithdrawalResolved = "withdrawal_resolved"
	NotificationDisputeResolved    = "dispute_resolved"
	NotificationTicketAnswered     = "ticket_answered"
)

// NotificationData - notification model from the store
type NotificationData struct {
	ID        string
	UserID    string
	Kind      string
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// NotificationResponse - notification model for output and the SSE feed
type NotificationResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// MarkReadRequest - mark-as-read payload, empty IDs means everything
type MarkReadRequest struct {
	IDs []string `json:"ids"`
}
