package models

import "time"

// Dispute statuses
const (
	DisputeStatusOpen     = "open"
	DisputeStatusRefunded = "refunded"
	DisputeStatusReleased = "released"
)

// DisputeRequest - dispute opening payload
type DisputeRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// DisputeResolution - admin resolution payload
type DisputeResolution struct {
	Outcome string `json:"outcome" validate:"required,oneof=refunded released"`
	Note    string `json:"note"`
}

// DisputeData - dispute model from the store
type DisputeData struct {
	ID             string
	OrderID        string
	BuyerID        string
	Reason         string
	Status         string
	ResolutionNote string
	CreatedAt      time.Time
	ResolvedAt     *time.Time
}
