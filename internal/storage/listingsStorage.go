package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertListing = `INSERT INTO LISTINGS (id, seller_id, title, description, price, status)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING id, seller_id, title, description, price, status, image_url, created_at;`
	GetListing = `SELECT id, seller_id, title, description, price, status, image_url, created_at
						FROM LISTINGS WHERE id=$1;`
	GetListingsBySeller = `SELECT id, seller_id, title, description, price, status, image_url, created_at
						FROM LISTINGS WHERE seller_id=$1 ORDER BY created_at DESC;`
	UpdateListingStatus = `UPDATE LISTINGS SET status=$1 WHERE id=$2 AND seller_id=$3;`
	UpdateListingImage  = `UPDATE LISTINGS SET image_url=$1 WHERE id=$2 AND seller_id=$3;`
)

type ListingDatabase struct {
	DB *Database
}

// Store creation
func NewListingsStorage(db *Database) ListingsStorage {
	return &ListingDatabase{DB: db}
}

func (s *ListingDatabase) AddListing(ctx context.Context, listing models.ListingData) (*models.ListingData, error) {
	row := s.DB.Pool.QueryRow(ctx, InsertListing,
		uuid.New().String(), listing.SellerID, listing.Title, listing.Description,
		listing.Price, models.ListingStatusActive)
	created, err := scanListing(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add listing: %w", err)
	}
	return created, nil
}

func (s *ListingDatabase) GetListing(ctx context.Context, id string) (*models.ListingData, error) {
	listing, err := scanListing(s.DB.Pool.QueryRow(ctx, GetListing, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return listing, nil
}

func (s *ListingDatabase) GetListingsBySeller(ctx context.Context, sellerID string) ([]models.ListingData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetListingsBySeller, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	defer rows.Close()

	var listings []models.ListingData
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return listings, fmt.Errorf("failed scan listing data: %w", err)
		}
		listings = append(listings, *listing)
	}
	return listings, rows.Err()
}

func (s *ListingDatabase) SetListingStatus(ctx context.Context, id string, sellerID string, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateListingStatus, status, id, sellerID)
	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

func (s *ListingDatabase) SetListingImage(ctx context.Context, id string, sellerID string, url string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateListingImage, url, id, sellerID)
	if err != nil {
		return fmt.Errorf("failed to update listing image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrListingNotFound
	}
	return nil
}

func scanListing(row pgx.Row) (*models.ListingData, error) {
	var listing models.ListingData
	err := row.Scan(
		&listing.ID,
		&listing.SellerID,
		&listing.Title,
		&listing.Description,
		&listing.Price,
		&listing.Status,
		&listing.ImageURL,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}
