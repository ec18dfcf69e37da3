package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertOrder = `INSERT INTO ORDERS (id, buyer_id, seller_id, listing_id, quantity, total_amount, status, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
						RETURNING id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at;`
	GetOrderByID = `SELECT id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at
						FROM ORDERS WHERE id=$1;`
	GetOrdersByBuyer = `SELECT id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at
						FROM ORDERS WHERE buyer_id=$1 ORDER BY created_at DESC;`
	GetOrdersBySeller = `SELECT id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at
						FROM ORDERS WHERE seller_id=$1 ORDER BY created_at DESC;`
	GetCompletedOrders = `SELECT id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at
						FROM ORDERS WHERE seller_id=$1 AND status='completed';`
	// idempotent: a second delivery sets the same terminal values again
	CompleteOrder = `UPDATE ORDERS
						SET status='completed', payment_id=$2, updated_at=NOW()
						WHERE id=$1 AND (status='pending' OR (status='completed' AND payment_id=$2))
						RETURNING id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at;`
	UpdateOrderStatus = `UPDATE ORDERS SET status=$1, updated_at=NOW() WHERE id=$2;`
	GetStaleOrders    = `SELECT id, buyer_id, seller_id, listing_id, quantity, total_amount, status, payment_id, created_at, updated_at
						FROM ORDERS
						WHERE status='pending' AND payment_id <> '' AND updated_at < NOW() - make_interval(secs => $1)
						ORDER BY updated_at LIMIT $2;`
	SetOrderPayment = `UPDATE ORDERS SET payment_id=$1, updated_at=NOW() WHERE id=$2;`
)

type OrderDatabase struct {
	DB *Database
}

// Store creation
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderData) (*models.OrderData, error) {
	row := s.DB.Pool.QueryRow(ctx, InsertOrder,
		uuid.New().String(), order.BuyerID, order.SellerID, order.ListingID,
		order.Quantity, order.TotalAmount, models.OrderStatusPending, time.Now())
	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add order: %w", err)
	}
	return created, nil
}

func (s *OrderDatabase) GetOrder(ctx context.Context, id string) (*models.OrderData, error) {
	order, err := scanOrder(s.DB.Pool.QueryRow(ctx, GetOrderByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) GetOrdersByBuyer(ctx context.Context, buyerID string) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetOrdersByBuyer, buyerID)
}

func (s *OrderDatabase) GetOrdersBySeller(ctx context.Context, sellerID string) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetOrdersBySeller, sellerID)
}

// GetCompletedOrders - earning orders for the seller ledger
func (s *OrderDatabase) GetCompletedOrders(ctx context.Context, sellerID string) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetCompletedOrders, sellerID)
}

// MarkOrderCompleted - terminal transition driven by an approved gateway payment.
// Applying it twice with the same payment id leaves the row unchanged.
func (s *OrderDatabase) MarkOrderCompleted(ctx context.Context, id string, paymentID string) (*models.OrderData, error) {
	order, err := scanOrder(s.DB.Pool.QueryRow(ctx, CompleteOrder, id, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}
	return order, nil
}

func (s *OrderDatabase) SetOrderStatus(ctx context.Context, id string, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateOrderStatus, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// SetOrderPayment - records the gateway reference for a freshly minted
// checkout session
func (s *OrderDatabase) SetOrderPayment(ctx context.Context, id string, paymentID string) error {
	tag, err := s.DB.Pool.Exec(ctx, SetOrderPayment, paymentID, id)
	if err != nil {
		return fmt.Errorf("failed to set order payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// GetStalePendingOrders - pending orders with a checkout session that never got
// a webhook, picked up by the reconciliation worker
func (s *OrderDatabase) GetStalePendingOrders(ctx context.Context, olderThan time.Duration, limit int) ([]models.OrderData, error) {
	return s.queryOrders(ctx, GetStaleOrders, olderThan.Seconds(), limit)
}

func (s *OrderDatabase) queryOrders(ctx context.Context, query string, args ...any) ([]models.OrderData, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []models.OrderData
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func scanOrder(row pgx.Row) (*models.OrderData, error) {
	var order models.OrderData
	err := row.Scan(
		&order.ID,
		&order.BuyerID,
		&order.SellerID,
		&order.ListingID,
		&order.Quantity,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
