package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

var (
	ErrOrderNotPayable = errors.New("order is not payable")
)

type PaymentsService interface {
	CreatePreference(ctx context.Context, buyerID string, orderID string) (*models.CheckoutResponse, error)
	HandleNotification(ctx context.Context, kind string, paymentID string) error
	ReconcileOrder(ctx context.Context, order models.OrderData) error
	GetStaleOrders(ctx context.Context, limit int) ([]models.OrderData, error)
}

type Payments struct {
	Orders   storage.OrdersStorage
	Listings storage.ListingsStorage
	Gateway  client.GatewayService
	Cache    *cache.Cache
	Notifier Notifier
}

// Service creation
func NewPayments(orders storage.OrdersStorage, listings storage.ListingsStorage, gateway client.GatewayService, c *cache.Cache, notifier Notifier) PaymentsService {
	return &Payments{Orders: orders, Listings: listings, Gateway: gateway, Cache: c, Notifier: notifier}
}

// CreatePreference - mints a gateway checkout session for a pending order.
// Gateway rejections are propagated with their reason, never retried here.
func (s *Payments) CreatePreference(ctx context.Context, buyerID string, orderID string) (*models.CheckoutResponse, error) {
	order, err := s.Orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to get order", zap.Error(err))
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, ErrNotOrderOwner
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}

	listing, err := s.Listings.GetListing(ctx, order.ListingID)
	if err != nil {
		logger.Error("Failed to get listing for checkout", zap.Error(err))
		return nil, err
	}

	unitPrice, _ := listing.Price.Float64()
	preference, err := s.Gateway.CreatePreference(ctx, client.PreferenceRequest{
		Items: []client.PreferenceItem{{
			Title:     listing.Title,
			Quantity:  order.Quantity,
			UnitPrice: unitPrice,
		}},
		ExternalReference: order.ID,
	})
	if err != nil {
		logger.Error("Gateway rejected preference", zap.Error(err))
		return nil, err
	}

	if err := s.Orders.SetOrderPayment(ctx, order.ID, preference.ID); err != nil {
		logger.Error("Failed to record checkout session", zap.Error(err))
		return nil, err
	}

	return &models.CheckoutResponse{
		PreferenceID: preference.ID,
		InitPoint:    preference.InitPoint,
	}, nil
}

// HandleNotification - webhook entry point. The payload status is never
// trusted: the payment is re-fetched from the gateway by id and only an
// approved re-fetch completes the order. Safe to deliver twice.
func (s *Payments) HandleNotification(ctx context.Context, kind string, paymentID string) error {
	if kind != "payment" {
		logger.Info("Ignoring gateway notification of kind", kind)
		return nil
	}

	payment, err := s.fetchPayment(ctx, paymentID)
	if err != nil {
		logger.Error("Failed to fetch payment", paymentID, zap.Error(err))
		return err
	}

	if payment.Status != models.PaymentStatusApproved {
		logger.Info("Payment not approved yet:", paymentID, payment.Status)
		return nil
	}

	return s.completeOrder(ctx, payment.ExternalReference, paymentID)
}

// ReconcileOrder - worker path for pending orders whose webhook never arrived.
// The order only carries the checkout-preference id, which the payment lookup
// does not accept, so the payment is searched by the order reference and the
// real payment id comes back with it.
func (s *Payments) ReconcileOrder(ctx context.Context, order models.OrderData) error {
	payment, err := s.Gateway.SearchPaymentByReference(ctx, order.ID)
	if err != nil {
		if errors.Is(err, client.ErrPaymentNotFound) {
			// checkout session minted but the buyer never paid
			return nil
		}
		return err
	}
	if payment.Status != models.PaymentStatusApproved {
		return nil
	}
	return s.completeOrder(ctx, order.ID, strconv.FormatInt(payment.ID, 10))
}

func (s *Payments) GetStaleOrders(ctx context.Context, limit int) ([]models.OrderData, error) {
	return s.Orders.GetStalePendingOrders(ctx, 15*time.Minute, limit)
}

// fetchPayment - authoritative lookup with fibonacci backoff on transient
// gateway failures; client errors are surfaced immediately
func (s *Payments) fetchPayment(ctx context.Context, paymentID string) (*client.PaymentResponse, error) {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))

	var payment *client.PaymentResponse
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		payment, err = s.Gateway.GetPayment(ctx, paymentID)
		if err != nil {
			if errors.Is(err, client.ErrGatewayUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *Payments) completeOrder(ctx context.Context, orderID string, paymentID string) error {
	order, err := s.Orders.MarkOrderCompleted(ctx, orderID, paymentID)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			// unknown reference stays unknown, failing here would make the
			// gateway redeliver the same notification forever
			logger.Warn("Payment references no order", orderID, paymentID)
			return nil
		}
		logger.Error("Failed to complete order", orderID, zap.Error(err))
		return err
	}

	s.Cache.Delete(ctx, balanceKey(order.SellerID))
	s.Notifier.Notify(ctx, order.BuyerID, models.NotificationOrderCompleted,
		"Payment approved", "Your order was paid and confirmed.")
	s.Notifier.Notify(ctx, order.SellerID, models.NotificationOrderCompleted,
		"New sale", "An order of "+order.TotalAmount.StringFixed(2)+" was paid.")
	return nil
}
