package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/ebarbosa87/pixmart/internal/helpers"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateOrderHandler - new pending order from an active listing
func CreateOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		order, err := s.CreateOrder(r.Context(), userID, req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				http.Error(w, "Listing not found", http.StatusNotFound)
			case errors.Is(err, services.ErrListingNotActive):
				http.Error(w, "Listing is not active", http.StatusConflict)
			default:
				logger.Error("Failed to create order:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toOrderResponse(*order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetPurchasesHandler - the authenticated user's orders
func GetPurchasesHandler(s services.OrdersService) http.HandlerFunc {
	return ordersListHandler(func(r *http.Request, userID string) ([]models.OrderData, error) {
		return s.GetPurchases(r.Context(), userID)
	})
}

// GetSalesHandler - orders where the authenticated user is the seller
func GetSalesHandler(s services.OrdersService) http.HandlerFunc {
	return ordersListHandler(func(r *http.Request, userID string) ([]models.OrderData, error) {
		return s.GetSales(r.Context(), userID)
	})
}

func ordersListHandler(fetch func(r *http.Request, userID string) ([]models.OrderData, error)) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		orders, err := fetch(r, userID)
		if err != nil {
			logger.Error("Failed to get orders:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.OrderResponse, 0, len(orders))
		for _, order := range orders {
			response = append(response, toOrderResponse(order))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// OpenDisputeHandler - buyer disputes a completed order
func OpenDisputeHandler(d services.DisputesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		orderID := chi.URLParam(r, "id")

		var req models.DisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		dispute, err := d.OpenDispute(r.Context(), userID, orderID, req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				http.Error(w, "Order not found", http.StatusNotFound)
			case errors.Is(err, services.ErrNotOrderOwner):
				http.Error(w, "Order belongs to another user", http.StatusForbidden)
			case errors.Is(err, services.ErrOrderNotDisputable):
				http.Error(w, "Only completed orders can be disputed", http.StatusConflict)
			default:
				logger.Error("Failed to open dispute:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(dispute); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

func toOrderResponse(order models.OrderData) models.OrderResponse {
	amount, _ := order.TotalAmount.Float64()
	return models.OrderResponse{
		ID:          order.ID,
		ListingID:   order.ListingID,
		Quantity:    order.Quantity,
		TotalAmount: amount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}
}
