package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal statuses
const (
	WithdrawalStatusPending  = "pending"
	WithdrawalStatusPaid     = "paid"
	WithdrawalStatusRejected = "rejected"
)

// Pix key types
const (
	PixKeyTypeCPF    = "cpf"
	PixKeyTypeEmail  = "email"
	PixKeyTypePhone  = "phone"
	PixKeyTypeRandom = "random"
)

// Balance - derived seller ledger: earnings minus withdrawals, split by maturity
type Balance struct {
	Total     decimal.Decimal
	Available decimal.Decimal
	Pending   decimal.Decimal
}

// BalanceResponse - balance model for output
type BalanceResponse struct {
	Total     float64 `json:"total"`
	Available float64 `json:"available"`
	Pending   float64 `json:"pending"`
}

// WithdrawalRequest - payout request payload
type WithdrawalRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// WithdrawalData - withdrawal model from the store. Payout destination fields
// are a snapshot taken at request time, later profile edits do not touch them.
type WithdrawalData struct {
	ID         string
	UserID     string
	Amount     decimal.Decimal
	Status     string
	PixKey     string
	PixKeyType string
	CPF        string
	FullName   string
	AdminNote  string
	CreatedAt  time.Time
	PaidAt     *time.Time
}

// WithdrawalResponse - withdrawal model for output
type WithdrawalResponse struct {
	ID        string  `json:"id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	PixKey    string  `json:"pix_key"`
	AdminNote string  `json:"admin_note,omitempty"`
	CreatedAt string  `json:"created_at"`
	PaidAt    string  `json:"paid_at,omitempty"`
}

// FinancialDetailsRequest - payout details payload
type FinancialDetailsRequest struct {
	PixKey     string `json:"pix_key" validate:"required"`
	PixKeyType string `json:"pix_key_type" validate:"required,oneof=cpf email phone random"`
	CPF        string `json:"cpf" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
}

// FinancialDetails - payout destination on file, one row per user,
// prerequisite for requesting a withdrawal
type FinancialDetails struct {
	UserID     string
	PixKey     string
	PixKeyType string
	CPF        string
	FullName   string
	UpdatedAt  time.Time
}
