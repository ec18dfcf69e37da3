package client

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// PreferenceItem - one cart line sent to the gateway
type PreferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PreferenceRequest - checkout session payload; ExternalReference carries the
// order id back through the webhook
type PreferenceRequest struct {
	Items             []PreferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
}

// PreferenceResponse - minted checkout session
type PreferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// PaymentResponse - authoritative payment state fetched by id
type PaymentResponse struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

// PaymentSearchResponse - payment search envelope, newest first
type PaymentSearchResponse struct {
	Results []PaymentResponse `json:"results"`
}

// GatewayService - what the payment services need from the gateway. Payment
// lookups take the gateway's numeric payment id; a checkout-preference id is a
// different identifier and is never valid there, reconciliation looks the
// payment up by the order reference instead.
type GatewayService interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (*PreferenceResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentResponse, error)
	SearchPaymentByReference(ctx context.Context, externalReference string) (*PaymentResponse, error)
}

var (
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrBadRequest         = errors.New("gateway rejected the payload")
)

type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
