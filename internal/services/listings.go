package services

import (
	"context"
	"errors"

	"github.com/ebarbosa87/pixmart/internal/client"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrListingNotActive  = errors.New("listing is not active")
	ErrObjectStoreNotSet = errors.New("object storage is not configured")
)

type ListingsService interface {
	CreateListing(ctx context.Context, sellerID string, req models.ListingRequest) (*models.ListingData, error)
	GetListings(ctx context.Context, sellerID string) ([]models.ListingData, error)
	SetListingStatus(ctx context.Context, id string, sellerID string, status string) error
	UploadImage(ctx context.Context, id string, sellerID string, contentType string, data []byte) (string, error)
}

type Listings struct {
	Storage storage.ListingsStorage
	Objects client.ObjectStore
	Bucket  string
}

// Service creation
func NewListings(storage storage.ListingsStorage, objects client.ObjectStore, bucket string) ListingsService {
	return &Listings{Storage: storage, Objects: objects, Bucket: bucket}
}

func (s *Listings) CreateListing(ctx context.Context, sellerID string, req models.ListingRequest) (*models.ListingData, error) {
	listing := models.ListingData{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price),
	}
	created, err := s.Storage.AddListing(ctx, listing)
	if err != nil {
		logger.Error("Failed to add listing", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Listings) GetListings(ctx context.Context, sellerID string) ([]models.ListingData, error) {
	listings, err := s.Storage.GetListingsBySeller(ctx, sellerID)
	if err != nil {
		logger.Error("Failed to get listings:", zap.Error(err))
		return nil, err
	}
	return listings, nil
}

func (s *Listings) SetListingStatus(ctx context.Context, id string, sellerID string, status string) error {
	err := s.Storage.SetListingStatus(ctx, id, sellerID, status)
	if err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			return ErrListingNotFound
		}
		logger.Error("Failed to update listing status", zap.Error(err))
		return err
	}
	return nil
}

// UploadImage - pushes the blob to the object store under the listing id and
// records the public URL. Re-uploading the same listing image overwrites it.
func (s *Listings) UploadImage(ctx context.Context, id string, sellerID string, contentType string, data []byte) (string, error) {
	if s.Objects == nil {
		return "", ErrObjectStoreNotSet
	}

	url, err := s.Objects.Upload(ctx, s.Bucket, id, contentType, data)
	if err != nil {
		logger.Error("Failed to upload listing image", zap.Error(err))
		return "", err
	}

	if err := s.Storage.SetListingImage(ctx, id, sellerID, url); err != nil {
		if errors.Is(err, storage.ErrListingNotFound) {
			return "", ErrListingNotFound
		}
		logger.Error("Failed to record listing image", zap.Error(err))
		return "", err
	}
	return url, nil
}
