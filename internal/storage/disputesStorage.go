package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	// the status guard makes a second concurrent dispute lose the update
	MarkOrderDisputed = `UPDATE ORDERS SET status='disputed', updated_at=NOW()
						WHERE id=$1 AND status='completed';`
	InsertDispute = `INSERT INTO DISPUTES (id, order_id, buyer_id, reason, status)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING id, order_id, buyer_id, reason, status, resolution_note, created_at, resolved_at;`
	GetOpenDisputes = `SELECT id, order_id, buyer_id, reason, status, resolution_note, created_at, resolved_at
						FROM DISPUTES WHERE status='open' ORDER BY created_at;`
	CloseDispute = `UPDATE DISPUTES
						SET status=$2, resolution_note=$3, resolved_at=$4
						WHERE id=$1 AND status='open'
						RETURNING id, order_id, buyer_id, reason, status, resolution_note, created_at, resolved_at;`
)

type DisputeDatabase struct {
	DB *Database
}

// Store creation
func NewDisputesStorage(db *Database) DisputesStorage {
	return &DisputeDatabase{DB: db}
}

// OpenDispute - marks the order disputed and inserts the dispute row in one
// transaction, nothing is left half-applied. The order transition only
// matches a completed order, so one of two concurrent disputes fails with
// ErrOrderNotDisputable instead of doubling up.
func (s *DisputeDatabase) OpenDispute(ctx context.Context, dispute models.DisputeData) (*models.DisputeData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("OpenDispute. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var tag pgconn.CommandTag
	if tag, err = tx.Exec(ctx, MarkOrderDisputed, dispute.OrderID); err != nil {
		return nil, fmt.Errorf("failed to mark order disputed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		err = ErrOrderNotDisputable
		return nil, err
	}

	row := tx.QueryRow(ctx, InsertDispute,
		uuid.New().String(), dispute.OrderID, dispute.BuyerID, dispute.Reason, models.DisputeStatusOpen)
	var created *models.DisputeData
	if created, err = scanDispute(row); err != nil {
		return nil, fmt.Errorf("failed to insert dispute: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("OpenDispute. Commit failed: %w", err)
	}
	return created, nil
}

func (s *DisputeDatabase) GetOpenDisputes(ctx context.Context) ([]models.DisputeData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetOpenDisputes)
	if err != nil {
		return nil, fmt.Errorf("failed to get disputes: %w", err)
	}
	defer rows.Close()

	var disputes []models.DisputeData
	for rows.Next() {
		dispute, err := scanDispute(rows)
		if err != nil {
			return disputes, fmt.Errorf("failed scan dispute data: %w", err)
		}
		disputes = append(disputes, *dispute)
	}
	return disputes, rows.Err()
}

// ResolveDispute - closes the dispute and moves the order to its final status
// in one transaction: refund cancels the order, release re-completes it.
func (s *DisputeDatabase) ResolveDispute(ctx context.Context, id string, outcome string, note string, now time.Time) (*models.DisputeData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("ResolveDispute. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	row := tx.QueryRow(ctx, CloseDispute, id, outcome, note, now)
	var resolved *models.DisputeData
	if resolved, err = scanDispute(row); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrDisputeNotOpen
			return nil, err
		}
		return nil, fmt.Errorf("failed to resolve dispute: %w", err)
	}

	orderStatus := models.OrderStatusCompleted
	if outcome == models.DisputeStatusRefunded {
		orderStatus = models.OrderStatusCancelled
	}
	if _, err = tx.Exec(ctx, UpdateOrderStatus, orderStatus, resolved.OrderID); err != nil {
		return nil, fmt.Errorf("failed to update disputed order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("ResolveDispute. Commit failed: %w", err)
	}
	return resolved, nil
}

func scanDispute(row pgx.Row) (*models.DisputeData, error) {
	var dispute models.DisputeData
	err := row.Scan(
		&dispute.ID,
		&dispute.OrderID,
		&dispute.BuyerID,
		&dispute.Reason,
		&dispute.Status,
		&dispute.ResolutionNote,
		&dispute.CreatedAt,
		&dispute.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &dispute, nil
}
