package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebarbosa87/pixmart/internal/helpers"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutHandler - mints a gateway checkout session for a pending order
func CheckoutHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		orderID := chi.URLParam(r, "id")

		checkout, err := p.CreatePreference(r.Context(), userID, orderID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, services.ErrNotOrderOwner):
				http.Error(w, "Order belongs to another user", http.StatusForbidden)
			case errors.Is(err, services.ErrOrderNotPayable):
				http.Error(w, "Order is not payable", http.StatusConflict)
			default:
				logger.Error("Failed to create preference:", zap.Error(err))
				http.Error(w, "Payment gateway error: "+err.Error(), http.StatusBadGateway)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(checkout); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// WebhookHandler - asynchronous gateway notification. Always answers 200 for
// notifications we deliberately ignore so the gateway stops retrying them.
func WebhookHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var notification models.WebhookNotification
		if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
			logger.Warn("Invalid webhook payload:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := p.HandleNotification(r.Context(), notification.Type, notification.Data.ID); err != nil {
			logger.Error("Failed to handle webhook:", zap.Error(err))
			// non-2xx makes the gateway redeliver, which is what we want here
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
