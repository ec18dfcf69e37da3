package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ebarbosa87/pixmart/internal/feed"
	"github.com/ebarbosa87/pixmart/internal/helpers"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"go.uber.org/zap"
)

// GetNotificationsHandler - the user's notifications, unread first
func GetNotificationsHandler(n services.NotificationsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		notifications, err := n.GetNotifications(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get notifications:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(notifications) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.NotificationResponse, 0, len(notifications))
		for _, notification := range notifications {
			response = append(response, toNotificationResponse(notification))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// MarkReadHandler - idempotent mark-as-read, empty id list marks everything
func MarkReadHandler(n services.NotificationsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.MarkReadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := n.MarkRead(r.Context(), userID, req.IDs); err != nil {
			logger.Error("Failed to mark read:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// FeedHandler - SSE stream of the user's fresh notifications. Best-effort: a
// dropped connection re-syncs through the list endpoint.
func FeedHandler(broker *feed.Broker) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		events, cancel := broker.Subscribe(userID)
		defer cancel()

		for {
			select {
			case <-r.Context().Done():
				return
			case notification, open := <-events:
				if !open {
					return
				}
				payload, err := json.Marshal(toNotificationResponse(notification))
				if err != nil {
					logger.Error("Failed to marshal feed event:", zap.Error(err))
					continue
				}
				if _, err := w.Write([]byte("event: notification\ndata: " + string(payload) + "\n\n")); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	})
}

func toNotificationResponse(notification models.NotificationData) models.NotificationResponse {
	return models.NotificationResponse{
		ID:        notification.ID,
		Kind:      notification.Kind,
		Title:     notification.Title,
		Body:      notification.Body,
		Read:      notification.Read,
		CreatedAt: notification.CreatedAt.Format(time.RFC3339),
	}
}
