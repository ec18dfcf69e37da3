package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	UpsertFinancials = `INSERT INTO SELLER_FINANCIALS (user_id, pix_key, pix_key_type, cpf, full_name, updated_at)
							VALUES ($1, $2, $3, $4, $5, NOW())
							ON CONFLICT (user_id) DO UPDATE
							SET pix_key=EXCLUDED.pix_key, pix_key_type=EXCLUDED.pix_key_type,
							    cpf=EXCLUDED.cpf, full_name=EXCLUDED.full_name, updated_at=NOW();`
	GetFinancials = `SELECT user_id, pix_key, pix_key_type, cpf, full_name, updated_at
							FROM SELLER_FINANCIALS WHERE user_id=$1;`
)

type FinancialDatabase struct {
	DB *Database
}

// Store creation
func NewFinancialsStorage(db *Database) FinancialsStorage {
	return &FinancialDatabase{DB: db}
}

func (s *FinancialDatabase) SaveFinancialDetails(ctx context.Context, details models.FinancialDetails) error {
	_, err := s.DB.Pool.Exec(ctx, UpsertFinancials,
		details.UserID, details.PixKey, details.PixKeyType, details.CPF, details.FullName)
	if err != nil {
		return fmt.Errorf("failed to save financial details: %w", err)
	}
	return nil
}

func (s *FinancialDatabase) GetFinancialDetails(ctx context.Context, userID string) (*models.FinancialDetails, error) {
	var details models.FinancialDetails
	err := s.DB.Pool.QueryRow(ctx, GetFinancials, userID).Scan(
		&details.UserID,
		&details.PixKey,
		&details.PixKeyType,
		&details.CPF,
		&details.FullName,
		&details.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get financial details: %w", err)
	}
	return &details, nil
}
