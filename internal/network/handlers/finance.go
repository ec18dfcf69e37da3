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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetBalanceHandler - derived seller balance: total, available, pending
func GetBalanceHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		balance, err := f.GetBalance(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get balance:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		total, _ := balance.Total.Float64()
		available, _ := balance.Available.Float64()
		pending, _ := balance.Pending.Float64()

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(models.BalanceResponse{
			Total:     total,
			Available: available,
			Pending:   pending,
		})
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// RequestWithdrawalHandler - payout request against the available balance
func RequestWithdrawalHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.WithdrawalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		created, err := f.RequestWithdrawal(r.Context(), userID, decimal.NewFromFloat(req.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWithdrawalAmount):
				http.Error(w, "Invalid withdrawal amount", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrMissingFinancialDetails):
				http.Error(w, "Missing payout details", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrInsufficientFunds):
				http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
			default:
				logger.Error("Failed to request withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toWithdrawalResponse(*created)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetWithdrawalsHandler - withdrawal history for the authenticated user
func GetWithdrawalsHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		withdrawals, err := f.GetWithdrawals(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get withdrawals:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(withdrawals) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.WithdrawalResponse, 0, len(withdrawals))
		for _, withdrawal := range withdrawals {
			response = append(response, toWithdrawalResponse(withdrawal))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// SaveFinancialsHandler - upsert payout details
func SaveFinancialsHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var req models.FinancialDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		if err := f.SaveFinancialDetails(r.Context(), userID, req); err != nil {
			if errors.Is(err, services.ErrInvalidFinancialDetails) {
				http.Error(w, "Invalid payout details", http.StatusUnprocessableEntity)
				return
			}
			logger.Error("Failed to save financial details:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// GetFinancialsHandler - payout details on file
func GetFinancialsHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		details, err := f.GetFinancialDetails(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrMissingFinancialDetails) {
				http.Error(w, "Not found", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get financial details:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(models.FinancialDetailsRequest{
			PixKey:     details.PixKey,
			PixKeyType: details.PixKeyType,
			CPF:        details.CPF,
			FullName:   details.FullName,
		})
		if err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

func toWithdrawalResponse(withdrawal models.WithdrawalData) models.WithdrawalResponse {
	amount, _ := withdrawal.Amount.Float64()
	response := models.WithdrawalResponse{
		ID:        withdrawal.ID,
		Amount:    amount,
		Status:    withdrawal.Status,
		PixKey:    withdrawal.PixKey,
		AdminNote: withdrawal.AdminNote,
		CreatedAt: withdrawal.CreatedAt.Format(time.RFC3339),
	}
	if withdrawal.PaidAt != nil {
		response.PaidAt = withdrawal.PaidAt.Format(time.RFC3339)
	}
	return response
}
