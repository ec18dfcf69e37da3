package services

import (
	"context"
	"errors"
	"time"

	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/ebarbosa87/pixmart/internal/validators"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// HoldPeriod - completed-order funds stay locked this long before they become
// withdrawable, covering the clearing/chargeback window.
const HoldPeriod = 48 * time.Hour

var (
	ErrInsufficientFunds        = errors.New("insufficient funds for withdrawal")
	ErrInvalidWithdrawalAmount  = errors.New("invalid withdrawal amount")
	ErrMissingFinancialDetails  = errors.New("missing payout details")
	ErrInvalidFinancialDetails  = errors.New("invalid payout details")
	ErrWithdrawalNotPending     = errors.New("withdrawal is not pending")
	ErrWithdrawalNotFound       = errors.New("withdrawal not found")
	ErrRejectionNoteRequired    = errors.New("rejection note is required")
)

type FinanceService interface {
	GetBalance(ctx context.Context, userID string) (*models.Balance, error)
	GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error)
	RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*models.WithdrawalData, error)
	SaveFinancialDetails(ctx context.Context, userID string, details models.FinancialDetailsRequest) error
	GetFinancialDetails(ctx context.Context, userID string) (*models.FinancialDetails, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalData, error)
	ResolveWithdrawal(ctx context.Context, id string, approve bool, note string) (*models.WithdrawalData, error)
}

type Finance struct {
	Orders      storage.OrdersStorage
	Withdrawals storage.WithdrawalsStorage
	Financials  storage.FinancialsStorage
	Cache       *cache.Cache
	Notifier    Notifier
}

// Service creation
func NewFinance(orders storage.OrdersStorage, withdrawals storage.WithdrawalsStorage, financials storage.FinancialsStorage, c *cache.Cache, notifier Notifier) FinanceService {
	return &Finance{Orders: orders, Withdrawals: withdrawals, Financials: financials, Cache: c, Notifier: notifier}
}

// ComputeBalance - pure seller ledger math over completed orders and
// non-rejected withdrawals. Total may go negative, Available never does.
// An order exactly HoldPeriod old counts as matured.
func ComputeBalance(orders []models.OrderData, withdrawals []models.WithdrawalData, now time.Time) models.Balance {
	var earned, matured, pending decimal.Decimal
	for _, order := range orders {
		earned = earned.Add(order.TotalAmount)
		if now.Sub(order.CreatedAt) >= HoldPeriod {
			matured = matured.Add(order.TotalAmount)
		} else {
			pending = pending.Add(order.TotalAmount)
		}
	}

	var withdrawn decimal.Decimal
	for _, withdrawal := range withdrawals {
		withdrawn = withdrawn.Add(withdrawal.Amount)
	}

	available := matured.Sub(withdrawn)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return models.Balance{
		Total:     earned.Sub(withdrawn),
		Available: available,
		Pending:   pending,
	}
}

// GetBalance - derives the seller balance from the ledger, short-lived cache
// in front of the two queries
func (s *Finance) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	var cached models.Balance
	if s.Cache.GetJSON(ctx, balanceKey(userID), &cached) {
		return &cached, nil
	}

	orders, err := s.Orders.GetCompletedOrders(ctx, userID)
	if err != nil {
		logger.Error("Failed to get completed orders", zap.Error(err))
		return nil, err
	}
	withdrawals, err := s.Withdrawals.GetActiveWithdrawals(ctx, userID)
	if err != nil {
		logger.Error("Failed to get withdrawals", zap.Error(err))
		return nil, err
	}

	balance := ComputeBalance(orders, withdrawals, time.Now())
	s.Cache.SetJSON(ctx, balanceKey(userID), balance, cache.BalanceTTL)
	return &balance, nil
}

// GetWithdrawals - full withdrawal history for display, rejected included
func (s *Finance) GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Withdrawals.GetWithdrawals(ctx, userID)
	if err != nil {
		logger.Error("Failed to get withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// RequestWithdrawal - snapshots the payout details on file into a new pending
// withdrawal. The amount check against the available balance happens inside
// the storage transaction, not here.
func (s *Finance) RequestWithdrawal(ctx context.Context, userID string, amount decimal.Decimal) (*models.WithdrawalData, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidWithdrawalAmount
	}

	details, err := s.Financials.GetFinancialDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Withdrawal requested without payout details", userID)
			return nil, ErrMissingFinancialDetails
		}
		logger.Error("Failed to get financial details", zap.Error(err))
		return nil, err
	}

	withdrawal := models.WithdrawalData{
		UserID:     userID,
		Amount:     amount,
		PixKey:     details.PixKey,
		PixKeyType: details.PixKeyType,
		CPF:        details.CPF,
		FullName:   details.FullName,
	}

	created, err := s.Withdrawals.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		if errors.Is(err, storage.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		logger.Error("Failed to create withdrawal", zap.Error(err))
		return nil, err
	}

	s.Cache.Delete(ctx, balanceKey(userID))
	return created, nil
}

// SaveFinancialDetails - upserts the payout destination after validating the
// CPF check digits and the pix key shape
func (s *Finance) SaveFinancialDetails(ctx context.Context, userID string, details models.FinancialDetailsRequest) error {
	if !validators.CheckCPF(details.CPF) {
		return ErrInvalidFinancialDetails
	}
	if !validators.CheckPixKey(details.PixKey, details.PixKeyType) {
		return ErrInvalidFinancialDetails
	}

	err := s.Financials.SaveFinancialDetails(ctx, models.FinancialDetails{
		UserID:     userID,
		PixKey:     details.PixKey,
		PixKeyType: details.PixKeyType,
		CPF:        details.CPF,
		FullName:   details.FullName,
	})
	if err != nil {
		logger.Error("Failed to save financial details", zap.Error(err))
		return err
	}
	return nil
}

func (s *Finance) GetFinancialDetails(ctx context.Context, userID string) (*models.FinancialDetails, error) {
	details, err := s.Financials.GetFinancialDetails(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrMissingFinancialDetails
		}
		logger.Error("Failed to get financial details", zap.Error(err))
		return nil, err
	}
	return details, nil
}

func (s *Finance) GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalData, error) {
	withdrawals, err := s.Withdrawals.GetPendingWithdrawals(ctx)
	if err != nil {
		logger.Error("Failed to get pending withdrawals:", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// ResolveWithdrawal - admin transition pending -> paid|rejected. Anything not
// pending fails without touching the record.
func (s *Finance) ResolveWithdrawal(ctx context.Context, id string, approve bool, note string) (*models.WithdrawalData, error) {
	if !approve && note == "" {
		return nil, ErrRejectionNoteRequired
	}

	resolved, err := s.Withdrawals.ResolveWithdrawal(ctx, id, approve, note, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrWithdrawalNotFound):
			return nil, ErrWithdrawalNotFound
		case errors.Is(err, storage.ErrWithdrawalNotPending):
			return nil, ErrWithdrawalNotPending
		}
		logger.Error("Failed to resolve withdrawal", zap.Error(err))
		return nil, err
	}

	s.Cache.Delete(ctx, balanceKey(resolved.UserID))

	title := "Withdrawal paid"
	body := "Your withdrawal of " + resolved.Amount.StringFixed(2) + " was paid."
	if !approve {
		title = "Withdrawal rejected"
		body = "Your withdrawal of " + resolved.Amount.StringFixed(2) + " was rejected: " + note
	}
	s.Notifier.Notify(ctx, resolved.UserID, models.NotificationWithdrawalResolved, title, body)

	return resolved, nil
}

func balanceKey(userID string) string {
	return "balance:" + userID
}
