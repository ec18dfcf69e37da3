package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing statuses
const (
	ListingStatusActive  = "active"
	ListingStatusPaused  = "paused"
	ListingStatusRemoved = "removed"
)

// ListingRequest - listing creation payload
type ListingRequest struct {
	Title       string  `json:"title" validate:"required,max=140"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
}

// ListingStatusRequest - pause or remove a listing
type ListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused removed"`
}

// ListingData - listing model from the store
type ListingData struct {
	ID          string
	SellerID    string
	Title       string
	Description string
	Price       decimal.Decimal
	Status      string
	ImageURL    string
	CreatedAt   time.Time
}

// ListingResponse - listing model for output
type ListingResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Status    string  `json:"status"`
	ImageURL  string  `json:"image_url,omitempty"`
	CreatedAt string  `json:"created_at"`
}
