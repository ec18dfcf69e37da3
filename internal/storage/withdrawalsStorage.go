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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	LockUserLedger = `SELECT pg_advisory_xact_lock(hashtext($1));`
	// matured earnings: completed orders older than the hold period
	GetMaturedEarnings = `SELECT COALESCE(SUM(total_amount), 0)
							FROM ORDERS
							WHERE seller_id=$1 AND status='completed' AND created_at <= NOW() - make_interval(secs => $2);`
	GetWithdrawnTotal = `SELECT COALESCE(SUM(amount), 0)
							FROM WITHDRAWALS
							WHERE user_id=$1 AND status <> 'rejected';`
	InsertWithdrawal = `INSERT INTO WITHDRAWALS (id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name)
							VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
							RETURNING id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at;`
	GetWithdrawalsByUser = `SELECT id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at
							FROM WITHDRAWALS WHERE user_id=$1 ORDER BY created_at DESC;`
	GetActiveWithdrawals = `SELECT id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at
							FROM WITHDRAWALS WHERE user_id=$1 AND status <> 'rejected' ORDER BY created_at;`
	GetPendingWithdrawals = `SELECT id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at
							FROM WITHDRAWALS WHERE status='pending' ORDER BY created_at;`
	GetWithdrawalStatus = `SELECT status FROM WITHDRAWALS WHERE id=$1;`
	ApproveWithdrawal = `UPDATE WITHDRAWALS
							SET status='paid', paid_at=$2
							WHERE id=$1 AND status='pending'
							RETURNING id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at;`
	RejectWithdrawal = `UPDATE WITHDRAWALS
							SET status='rejected', admin_note=$2
							WHERE id=$1 AND status='pending'
							RETURNING id, user_id, amount, status, pix_key, pix_key_type, cpf, full_name, admin_note, created_at, paid_at;`
)

type WithdrawalDatabase struct {
	DB         *Database
	HoldPeriod time.Duration
}

// Store creation
func NewWithdrawalsStorage(db *Database) WithdrawalsStorage {
	return &WithdrawalDatabase{DB: db, HoldPeriod: 48 * time.Hour}
}

// CreateWithdrawal - validates the requested amount against the seller's
// available (matured minus withdrawn) balance and inserts the pending row in
// one transaction. The per-user advisory lock serializes concurrent requests
// so two of them cannot both pass a stale balance check.
func (s *WithdrawalDatabase) CreateWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				logger.Error("CreateWithdrawal. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	if _, err = tx.Exec(ctx, LockUserLedger, withdrawal.UserID); err != nil {
		return nil, fmt.Errorf("failed to lock ledger: %w", err)
	}

	var matured, withdrawn decimal.Decimal
	if err = tx.QueryRow(ctx, GetMaturedEarnings, withdrawal.UserID, s.HoldPeriod.Seconds()).Scan(&matured); err != nil {
		return nil, fmt.Errorf("failed to sum matured earnings: %w", err)
	}
	if err = tx.QueryRow(ctx, GetWithdrawnTotal, withdrawal.UserID).Scan(&withdrawn); err != nil {
		return nil, fmt.Errorf("failed to sum withdrawals: %w", err)
	}

	available := matured.Sub(withdrawn)
	if withdrawal.Amount.GreaterThan(available) {
		err = ErrInsufficientFunds
		return nil, err
	}

	row := tx.QueryRow(ctx, InsertWithdrawal,
		uuid.New().String(), withdrawal.UserID, withdrawal.Amount, models.WithdrawalStatusPending,
		withdrawal.PixKey, withdrawal.PixKeyType, withdrawal.CPF, withdrawal.FullName)
	var created *models.WithdrawalData
	if created, err = scanWithdrawal(row); err != nil {
		return nil, fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateWithdrawal. Commit failed: %w", err)
	}
	return created, nil
}

func (s *WithdrawalDatabase) GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	return s.queryWithdrawals(ctx, GetWithdrawalsByUser, userID)
}

// GetActiveWithdrawals - non-rejected withdrawals, the ones the ledger counts
func (s *WithdrawalDatabase) GetActiveWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error) {
	return s.queryWithdrawals(ctx, GetActiveWithdrawals, userID)
}

func (s *WithdrawalDatabase) GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalData, error) {
	return s.queryWithdrawals(ctx, GetPendingWithdrawals)
}

// ResolveWithdrawal - pending -> paid|rejected, both terminal. The conditional
// UPDATE returns no row when the withdrawal left pending already, a follow-up
// lookup tells that apart from an id that never existed.
func (s *WithdrawalDatabase) ResolveWithdrawal(ctx context.Context, id string, approve bool, note string, now time.Time) (*models.WithdrawalData, error) {
	var row pgx.Row
	if approve {
		row = s.DB.Pool.QueryRow(ctx, ApproveWithdrawal, id, now)
	} else {
		row = s.DB.Pool.QueryRow(ctx, RejectWithdrawal, id, note)
	}
	resolved, err := scanWithdrawal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var status string
			if err := s.DB.Pool.QueryRow(ctx, GetWithdrawalStatus, id).Scan(&status); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return nil, ErrWithdrawalNotFound
				}
				return nil, fmt.Errorf("failed to check withdrawal: %w", err)
			}
			return nil, ErrWithdrawalNotPending
		}
		return nil, fmt.Errorf("failed to resolve withdrawal: %w", err)
	}
	return resolved, nil
}

func (s *WithdrawalDatabase) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.WithdrawalData, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawals: %w", err)
	}
	defer rows.Close()

	var withdrawals []models.WithdrawalData
	for rows.Next() {
		withdrawal, err := scanWithdrawal(rows)
		if err != nil {
			return withdrawals, fmt.Errorf("failed scan withdrawal data: %w", err)
		}
		withdrawals = append(withdrawals, *withdrawal)
	}
	return withdrawals, rows.Err()
}

func scanWithdrawal(row pgx.Row) (*models.WithdrawalData, error) {
	var withdrawal models.WithdrawalData
	err := row.Scan(
		&withdrawal.ID,
		&withdrawal.UserID,
		&withdrawal.Amount,
		&withdrawal.Status,
		&withdrawal.PixKey,
		&withdrawal.PixKeyType,
		&withdrawal.CPF,
		&withdrawal.FullName,
		&withdrawal.AdminNote,
		&withdrawal.CreatedAt,
		&withdrawal.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}
