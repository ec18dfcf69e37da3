package services

import (
	"context"
	"errors"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNotOrderOwner = errors.New("order belongs to another user")
)

type OrdersService interface {
	CreateOrder(ctx context.Context, buyerID string, req models.OrderRequest) (*models.OrderData, error)
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetPurchases(ctx context.Context, buyerID string) ([]models.OrderData, error)
	GetSales(ctx context.Context, sellerID string) ([]models.OrderData, error)
}

type Orders struct {
	Storage  storage.OrdersStorage
	Listings storage.ListingsStorage
}

// Service creation
func NewOrders(orders storage.OrdersStorage, listings storage.ListingsStorage) OrdersService {
	return &Orders{Storage: orders, Listings: listings}
}

// CreateOrder - creates a pending order from an active listing, total is
// derived server side from the listing price
func (s *Orders) CreateOrder(ctx context.Context, buyerID string, req models.OrderRequest) (*models.OrderData, error) {
	listing, err := s.Listings.GetListing(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			return nil, ErrListingNotFound
		}
		logger.Error("Failed to get listing", zap.Error(err))
		return nil, err
	}
	if listing.Status != models.ListingStatusActive {
		return nil, ErrListingNotActive
	}

	order := models.OrderData{
		BuyerID:     buyerID,
		SellerID:    listing.SellerID,
		ListingID:   listing.ID,
		Quantity:    req.Quantity,
		TotalAmount: listing.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
	}

	created, err := s.Storage.AddOrder(ctx, order)
	if err != nil {
		logger.Error("Failed to add order", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Orders) GetOrder(ctx context.Context, id string) (*models.OrderData, error) {
	order, err := s.Storage.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to get order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Orders) GetPurchases(ctx context.Context, buyerID string) ([]models.OrderData, error) {
	orders, err := s.Storage.GetOrdersByBuyer(ctx, buyerID)
	if err != nil {
		logger.Error("Failed to get purchases:", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Orders) GetSales(ctx context.Context, sellerID string) ([]models.OrderData, error) {
	orders, err := s.Storage.GetOrdersBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to get sales:", zap.Error(err))
		return nil, err
	}
	return orders, nil
}
