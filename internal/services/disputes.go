package services

import (
	"context"
	"errors"
	"time"

	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrOrderNotDisputable = errors.New("only completed orders can be disputed")
	ErrDisputeNotOpen     = errors.New("dispute is not open")
)

type DisputesService interface {
	OpenDispute(ctx context.Context, buyerID string, orderID string, reason string) (*models.DisputeData, error)
	GetOpenDisputes(ctx context.Context) ([]models.DisputeData, error)
	ResolveDispute(ctx context.Context, id string, outcome string, note string) (*models.DisputeData, error)
}

type Disputes struct {
	Storage  storage.DisputesStorage
	Orders   storage.OrdersStorage
	Cache    *cache.Cache
	Notifier Notifier
}

// Service creation
func NewDisputes(disputes storage.DisputesStorage, orders storage.OrdersStorage, c *cache.Cache, notifier Notifier) DisputesService {
	return &Disputes{Storage: disputes, Orders: orders, Cache: c, Notifier: notifier}
}

// OpenDispute - a buyer disputes their own completed order. Order transition
// and dispute insert land in a single storage transaction.
func (s *Disputes) OpenDispute(ctx context.Context, buyerID string, orderID string, reason string) (*models.DisputeData, error) {
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
	if order.Status != models.OrderStatusCompleted {
		return nil, ErrOrderNotDisputable
	}

	dispute, err := s.Storage.OpenDispute(ctx, models.DisputeData{
		OrderID: orderID,
		BuyerID: buyerID,
		Reason:  reason,
	})
	if err != nil {
		// the read above is not transactional, the storage guard is the one
		// that decides between two concurrent disputes
		if errors.Is(err, storage.ErrOrderNotDisputable) {
			return nil, ErrOrderNotDisputable
		}
		logger.Error("Failed to open dispute", zap.Error(err))
		return nil, err
	}

	// the disputed order leaves the ledger until resolution
	s.Cache.Delete(ctx, balanceKey(order.SellerID))
	return dispute, nil
}

func (s *Disputes) GetOpenDisputes(ctx context.Context) ([]models.DisputeData, error) {
	disputes, err := s.Storage.GetOpenDisputes(ctx)
	if err != nil {
		logger.Error("Failed to get disputes:", zap.Error(err))
		return nil, err
	}
	return disputes, nil
}

// ResolveDispute - admin decision, dispute and order move together in one
// transaction. A dispute not in open state fails untouched.
func (s *Disputes) ResolveDispute(ctx context.Context, id string, outcome string, note string) (*models.DisputeData, error) {
	resolved, err := s.Storage.ResolveDispute(ctx, id, outcome, note, time.Now())
	if err != nil {
		if errors.Is(err, storage.ErrDisputeNotOpen) {
			return nil, ErrDisputeNotOpen
		}
		logger.Error("Failed to resolve dispute", zap.Error(err))
		return nil, err
	}

	order, err := s.Orders.GetOrder(ctx, resolved.OrderID)
	if err == nil {
		s.Cache.Delete(ctx, balanceKey(order.SellerID))
	}

	body := "Your dispute was resolved: funds released to the seller."
	if outcome == models.DisputeStatusRefunded {
		body = "Your dispute was resolved: the order was refunded."
	}
	s.Notifier.Notify(ctx, resolved.BuyerID, models.NotificationDisputeResolved, "Dispute resolved", body)

	return resolved, nil
}
