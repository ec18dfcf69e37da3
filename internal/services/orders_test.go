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
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrdersService_CreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockListings := mocks.NewMockListingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockOrders, mockListings)

	activeListing := &models.ListingData{
		ID:       "l1",
		SellerID: "seller",
		Title:    "Keyboard",
		Price:    decimal.RequireFromString("25.00"),
		Status:   models.ListingStatusActive,
	}

	testCases := []struct {
		Name          string
		Request       models.OrderRequest
		SetupMocks    func()
		ExpectedError error
		ExpectedTotal string
	}{
		{
			Name:    "Error. Listing not found #1",
			Request: models.OrderRequest{ListingID: "l1", Quantity: 2},
			SetupMocks: func() {
				mockListings.EXPECT().GetListing(gomock.Any(), "l1").Return(nil, storage.ErrListingNotFound)
			},
			ExpectedError: ErrListingNotFound,
		},
		{
			Name:    "Error. Paused listing #2",
			Request: models.OrderRequest{ListingID: "l1", Quantity: 2},
			SetupMocks: func() {
				paused := *activeListing
				paused.Status = models.ListingStatusPaused
				mockListings.EXPECT().GetListing(gomock.Any(), "l1").Return(&paused, nil)
			},
			ExpectedError: ErrListingNotActive,
		},
		{
			Name:    "Error. Failed add order #3",
			Request: models.OrderRequest{ListingID: "l1", Quantity: 2},
			SetupMocks: func() {
				mockListings.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to add order"))
			},
			ExpectedError: errors.New("failed to add order"),
		},
		{
			Name:    "Success. Total derived from the listing price #4",
			Request: models.OrderRequest{ListingID: "l1", Quantity: 3},
			SetupMocks: func() {
				mockListings.EXPECT().GetListing(gomock.Any(), "l1").Return(activeListing, nil)
				mockOrders.EXPECT().AddOrder(gomock.Any(), models.OrderData{
					BuyerID:     "buyer",
					SellerID:    "seller",
					ListingID:   "l1",
					Quantity:    3,
					TotalAmount: decimal.RequireFromString("75.00"),
				}).Return(&models.OrderData{
					ID: "o1", BuyerID: "buyer", SellerID: "seller", ListingID: "l1",
					Quantity: 3, TotalAmount: decimal.RequireFromString("75.00"),
					Status: models.OrderStatusPending,
				}, nil)
			},
			ExpectedError: nil,
			ExpectedTotal: "75.00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			order, err := orders.CreateOrder(ctx, "buyer", tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && order.TotalAmount.StringFixed(2) != tc.ExpectedTotal {
				t.Errorf("Expected total '%s', got: '%s'", tc.ExpectedTotal, order.TotalAmount.StringFixed(2))
			}
		})
	}
}

func TestOrdersService_GetPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockListings := mocks.NewMockListingsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	orders := NewOrders(mockOrders, mockListings)

	expected := []models.OrderData{
		{ID: "o1", BuyerID: "buyer", TotalAmount: decimal.NewFromInt(10)},
		{ID: "o2", BuyerID: "buyer", TotalAmount: decimal.NewFromInt(20)},
	}

	mockOrders.EXPECT().GetOrdersByBuyer(gomock.Any(), "buyer").Return(expected, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	purchases, err := orders.GetPurchases(ctx, "buyer")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	diff := cmp.Diff(expected, purchases)
	if len(diff) != 0 {
		t.Errorf("expected purchases mismatch:\n %s", diff)
	}
}
