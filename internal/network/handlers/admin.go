package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GetPendingWithdrawalsHandler - withdrawals waiting for an admin decision
func GetPendingWithdrawalsHandler(f services.FinanceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := f.GetPendingWithdrawals(r.Context())
		if err != nil {
			logger.Error("Failed to get pending withdrawals:", zap.Error(err))
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

// ApproveWithdrawalHandler - pending -> paid
func ApproveWithdrawalHandler(f services.FinanceService) http.HandlerFunc {
	return resolveWithdrawalHandler(f, true)
}

// RejectWithdrawalHandler - pending -> rejected with a note
func RejectWithdrawalHandler(f services.FinanceService) http.HandlerFunc {
	return resolveWithdrawalHandler(f, false)
}

func resolveWithdrawalHandler(f services.FinanceService, approve bool) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var note string
		if !approve {
			var req struct {
				Note string `json:"note"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logger.Warn("Invalid request format:", zap.Error(err))
				http.Error(w, "Invalid request format", http.StatusBadRequest)
				return
			}
			note = req.Note
		}

		resolved, err := f.ResolveWithdrawal(r.Context(), id, approve, note)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWithdrawalNotFound):
				http.Error(w, "Withdrawal not found", http.StatusNotFound)
			case errors.Is(err, services.ErrWithdrawalNotPending):
				http.Error(w, "Withdrawal is not pending", http.StatusConflict)
			case errors.Is(err, services.ErrRejectionNoteRequired):
				http.Error(w, "Rejection note is required", http.StatusBadRequest)
			default:
				logger.Error("Failed to resolve withdrawal:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(toWithdrawalResponse(*resolved)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOpenDisputesHandler - disputes waiting for an admin decision
func GetOpenDisputesHandler(d services.DisputesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		disputes, err := d.GetOpenDisputes(r.Context())
		if err != nil {
			logger.Error("Failed to get disputes:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(disputes) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(disputes); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ResolveDisputeHandler - open -> refunded|released, order moves with it
func ResolveDisputeHandler(d services.DisputesService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.DisputeResolution
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		resolved, err := d.ResolveDispute(r.Context(), id, req.Outcome, req.Note)
		if err != nil {
			if errors.Is(err, services.ErrDisputeNotOpen) {
				http.Error(w, "Dispute is not open", http.StatusConflict)
				return
			}
			logger.Error("Failed to resolve dispute:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resolved); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}

// GetOpenTicketsHandler - support queue for admins
func GetOpenTicketsHandler(t services.TicketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tickets, err := t.GetOpenTickets(r.Context())
		if err != nil {
			logger.Error("Failed to get open tickets:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}
		if len(tickets) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(tickets); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ReplyTicketHandler - admin answer to an open ticket
func ReplyTicketHandler(t services.TicketsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req models.TicketReply
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}

		ticket, err := t.ReplyTicket(r.Context(), id, req.Body)
		if err != nil {
			if errors.Is(err, services.ErrTicketNotOpen) {
				http.Error(w, "Ticket is not open", http.StatusConflict)
				return
			}
			logger.Error("Failed to reply ticket:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ticket); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
		}
	})
}
