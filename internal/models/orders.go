package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusDisputed  = "disputed"
)

// OrderRequest - order creation payload
type OrderRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// OrderData - order model from the store
type OrderData struct {
	ID          string
	BuyerID     string
	SellerID    string
	ListingID   string
	Quantity    int
	TotalAmount decimal.Decimal
	Status      string
	PaymentID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderResponse - order model for output
type OrderResponse struct {
	ID          string  `json:"id"`
	ListingID   string  `json:"listing_id"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}
