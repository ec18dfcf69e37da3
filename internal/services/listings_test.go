package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/ebarbosa87/pixmart/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestListingsService_SetListingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockListings := mocks.NewMockListingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	listings := NewListings(mockListings, nil, "")

	testCases := []struct {
		Name          string
		Status        string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:   "Error. Listing not found or someone else's #1",
			Status: models.ListingStatusPaused,
			SetupMocks: func() {
				mockListings.EXPECT().SetListingStatus(gomock.Any(), "l1", "seller", models.ListingStatusPaused).
					Return(storage.ErrListingNotFound)
			},
			ExpectedError: ErrListingNotFound,
		},
		{
			Name:   "Error. Storage failure #2",
			Status: models.ListingStatusRemoved,
			SetupMocks: func() {
				mockListings.EXPECT().SetListingStatus(gomock.Any(), "l1", "seller", models.ListingStatusRemoved).
					Return(errors.New("connection lost"))
			},
			ExpectedError: errors.New("connection lost"),
		},
		{
			Name:   "Success. Listing paused #3",
			Status: models.ListingStatusPaused,
			SetupMocks: func() {
				mockListings.EXPECT().SetListingStatus(gomock.Any(), "l1", "seller", models.ListingStatusPaused).
					Return(nil)
			},
			ExpectedError: nil,
		},
		{
			Name:   "Success. Listing removed #4",
			Status: models.ListingStatusRemoved,
			SetupMocks: func() {
				mockListings.EXPECT().SetListingStatus(gomock.Any(), "l1", "seller", models.ListingStatusRemoved).
					Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := listings.SetListingStatus(ctx, "l1", "seller", tc.Status)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}
