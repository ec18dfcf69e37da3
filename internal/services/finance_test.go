package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ebarbosa87/pixmart/internal/cache"
	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/ebarbosa87/pixmart/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestComputeBalance(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	completedOrder := func(amount string, age time.Duration) models.OrderData {
		return models.OrderData{
			Status:      models.OrderStatusCompleted,
			TotalAmount: decimal.RequireFromString(amount),
			CreatedAt:   now.Add(-age),
		}
	}

	testCases := []struct {
		Name            string
		Orders          []models.OrderData
		Withdrawals     []models.WithdrawalData
		ExpectedBalance models.Balance
	}{
		{
			Name:        "No orders, no withdrawals #1",
			Orders:      nil,
			Withdrawals: nil,
			ExpectedBalance: models.Balance{
				Total:     decimal.Zero,
				Available: decimal.Zero,
				Pending:   decimal.Zero,
			},
		},
		{
			Name:        "Single matured order #2",
			Orders:      []models.OrderData{completedOrder("100.00", 72*time.Hour)},
			Withdrawals: nil,
			ExpectedBalance: models.Balance{
				Total:     decimal.RequireFromString("100.00"),
				Available: decimal.RequireFromString("100.00"),
				Pending:   decimal.Zero,
			},
		},
		{
			Name:        "Single fresh order stays pending #3",
			Orders:      []models.OrderData{completedOrder("100.00", time.Hour)},
			Withdrawals: nil,
			ExpectedBalance: models.Balance{
				Total:     decimal.RequireFromString("100.00"),
				Available: decimal.Zero,
				Pending:   decimal.RequireFromString("100.00"),
			},
		},
		{
			Name:        "Order exactly at the hold boundary counts as matured #4",
			Orders:      []models.OrderData{completedOrder("100.00", HoldPeriod)},
			Withdrawals: nil,
			ExpectedBalance: models.Balance{
				Total:     decimal.RequireFromString("100.00"),
				Available: decimal.RequireFromString("100.00"),
				Pending:   decimal.Zero,
			},
		},
		{
			Name: "Mixed maturity minus a paid withdrawal #5",
			Orders: []models.OrderData{
				completedOrder("100.00", 5*24*time.Hour),
				completedOrder("50.00", 24*time.Hour),
			},
			Withdrawals: []models.WithdrawalData{
				{Amount: decimal.RequireFromString("40.00"), Status: models.WithdrawalStatusPaid},
			},
			ExpectedBalance: models.Balance{
				Total:     decimal.RequireFromString("110.00"),
				Available: decimal.RequireFromString("60.00"),
				Pending:   decimal.RequireFromString("50.00"),
			},
		},
		{
			Name:   "Withdrawn above earnings, available clamps to zero #6",
			Orders: []models.OrderData{completedOrder("30.00", 72*time.Hour)},
			Withdrawals: []models.WithdrawalData{
				{Amount: decimal.RequireFromString("50.00"), Status: models.WithdrawalStatusPaid},
			},
			ExpectedBalance: models.Balance{
				Total:     decimal.RequireFromString("-20.00"),
				Available: decimal.Zero,
				Pending:   decimal.Zero,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			balance := ComputeBalance(tc.Orders, tc.Withdrawals, now)

			if !balance.Total.Equal(tc.ExpectedBalance.Total) {
				t.Errorf("Expected total '%s', got: '%s'", tc.ExpectedBalance.Total, balance.Total)
			}
			if !balance.Available.Equal(tc.ExpectedBalance.Available) {
				t.Errorf("Expected available '%s', got: '%s'", tc.ExpectedBalance.Available, balance.Available)
			}
			if !balance.Pending.Equal(tc.ExpectedBalance.Pending) {
				t.Errorf("Expected pending '%s', got: '%s'", tc.ExpectedBalance.Pending, balance.Pending)
			}
		})
	}
}

func TestFinanceService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockFinancials := mocks.NewMockFinancialsStorage(ctrl)
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	finance := NewFinance(mockOrders, mockWithdrawals, mockFinancials, cache.New(""), NewNotifications(mockNotifications))

	testCases := []struct {
		Name            string
		UserID          string
		SetupMocks      func()
		ExpectedError   error
		ExpectedBalance *models.Balance
	}{
		{
			Name:   "Error. Failed get orders #1",
			UserID: "u1",
			SetupMocks: func() {
				mockOrders.EXPECT().GetCompletedOrders(gomock.Any(), "u1").Return(nil, errors.New("failed to get orders"))
			},
			ExpectedError:   errors.New("failed to get orders"),
			ExpectedBalance: nil,
		},
		{
			Name:   "Error. Failed get withdrawals #2",
			UserID: "u1",
			SetupMocks: func() {
				mockOrders.EXPECT().GetCompletedOrders(gomock.Any(), "u1").Return(nil, nil)
				mockWithdrawals.EXPECT().GetActiveWithdrawals(gomock.Any(), "u1").Return(nil, errors.New("failed to get withdrawals"))
			},
			ExpectedError:   errors.New("failed to get withdrawals"),
			ExpectedBalance: nil,
		},
		{
			Name:   "Success. Empty ledger #3",
			UserID: "u1",
			SetupMocks: func() {
				mockOrders.EXPECT().GetCompletedOrders(gomock.Any(), "u1").Return(nil, nil)
				mockWithdrawals.EXPECT().GetActiveWithdrawals(gomock.Any(), "u1").Return(nil, nil)
			},
			ExpectedError:   nil,
			ExpectedBalance: &models.Balance{Total: decimal.Zero, Available: decimal.Zero, Pending: decimal.Zero},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			balance, err := finance.GetBalance(ctx, tc.UserID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			diff := cmp.Diff(tc.ExpectedBalance, balance)
			if len(diff) != 0 {
				t.Errorf("expected balance mismatch:\n %s", diff)
			}
		})
	}
}

func TestFinanceService_RequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockFinancials := mocks.NewMockFinancialsStorage(ctrl)
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	finance := NewFinance(mockOrders, mockWithdrawals, mockFinancials, cache.New(""), NewNotifications(mockNotifications))

	details := &models.FinancialDetails{
		UserID:     "u1",
		PixKey:     "seller@example.com",
		PixKeyType: models.PixKeyTypeEmail,
		CPF:        "52998224725",
		FullName:   "Ana Souza",
	}

	testCases := []struct {
		Name          string
		UserID        string
		Amount        decimal.Decimal
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Non-positive amount #1",
			UserID:        "u1",
			Amount:        decimal.NewFromInt(-1),
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidWithdrawalAmount,
		},
		{
			Name:   "Error. No payout details on file #2",
			UserID: "u1",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)
			},
			ExpectedError: ErrMissingFinancialDetails,
		},
		{
			Name:   "Error. Insufficient funds #3",
			UserID: "u1",
			Amount: decimal.NewFromInt(1000),
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(details, nil)
				mockWithdrawals.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInsufficientFunds)
			},
			ExpectedError: ErrInsufficientFunds,
		},
		{
			Name:   "Success. Details snapshotted into the withdrawal #4",
			UserID: "u1",
			Amount: decimal.NewFromInt(10),
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(details, nil)
				mockWithdrawals.EXPECT().CreateWithdrawal(gomock.Any(), models.WithdrawalData{
					UserID:     "u1",
					Amount:     decimal.NewFromInt(10),
					PixKey:     details.PixKey,
					PixKeyType: details.PixKeyType,
					CPF:        details.CPF,
					FullName:   details.FullName,
				}).Return(&models.WithdrawalData{ID: "w1", UserID: "u1", Amount: decimal.NewFromInt(10), Status: models.WithdrawalStatusPending}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := finance.RequestWithdrawal(ctx, tc.UserID, tc.Amount)

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

func TestFinanceService_ResolveWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockFinancials := mocks.NewMockFinancialsStorage(ctrl)
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	finance := NewFinance(mockOrders, mockWithdrawals, mockFinancials, cache.New(""), NewNotifications(mockNotifications))

	testCases := []struct {
		Name          string
		ID            string
		Approve       bool
		Note          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Rejection without a note #1",
			ID:            "w1",
			Approve:       false,
			Note:          "",
			SetupMocks:    func() {},
			ExpectedError: ErrRejectionNoteRequired,
		},
		{
			Name:    "Error. Withdrawal already resolved #2",
			ID:      "w1",
			Approve: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().ResolveWithdrawal(gomock.Any(), "w1", true, "", gomock.Any()).Return(nil, storage.ErrWithdrawalNotPending)
			},
			ExpectedError: ErrWithdrawalNotPending,
		},
		{
			Name:    "Error. Unknown withdrawal id #3",
			ID:      "ghost",
			Approve: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().ResolveWithdrawal(gomock.Any(), "ghost", true, "", gomock.Any()).Return(nil, storage.ErrWithdrawalNotFound)
			},
			ExpectedError: ErrWithdrawalNotFound,
		},
		{
			Name:    "Success. Approved and seller notified #4",
			ID:      "w1",
			Approve: true,
			SetupMocks: func() {
				mockWithdrawals.EXPECT().ResolveWithdrawal(gomock.Any(), "w1", true, "", gomock.Any()).Return(&models.WithdrawalData{
					ID:     "w1",
					UserID: "u1",
					Amount: decimal.NewFromInt(10),
					Status: models.WithdrawalStatusPaid,
				}, nil)
				mockNotifications.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(&models.NotificationData{}, nil)
			},
			ExpectedError: nil,
		},
		{
			Name:    "Success. Rejected with a note #5",
			ID:      "w1",
			Approve: false,
			Note:    "pix key bounced",
			SetupMocks: func() {
				mockWithdrawals.EXPECT().ResolveWithdrawal(gomock.Any(), "w1", false, "pix key bounced", gomock.Any()).Return(&models.WithdrawalData{
					ID:     "w1",
					UserID: "u1",
					Amount: decimal.NewFromInt(10),
					Status: models.WithdrawalStatusRejected,
				}, nil)
				mockNotifications.EXPECT().AddNotification(gomock.Any(), gomock.Any()).Return(&models.NotificationData{}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			_, err := finance.ResolveWithdrawal(ctx, tc.ID, tc.Approve, tc.Note)

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

func TestFinanceService_GetFinancialDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockOrders := mocks.NewMockOrdersStorage(ctrl)
	mockWithdrawals := mocks.NewMockWithdrawalsStorage(ctrl)
	mockFinancials := mocks.NewMockFinancialsStorage(ctrl)
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	finance := NewFinance(mockOrders, mockWithdrawals, mockFinancials, cache.New(""), NewNotifications(mockNotifications))

	details := &models.FinancialDetails{
		UserID:     "u1",
		PixKey:     "52998224725",
		PixKeyType: models.PixKeyTypeCPF,
		CPF:        "52998224725",
		FullName:   "Maria Silva",
	}

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Error. Nothing on file maps to missing details #1",
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)
			},
			ExpectedError: ErrMissingFinancialDetails,
		},
		{
			Name: "Error. Storage failure is not a missing record #2",
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(nil, errors.New("connection lost"))
			},
			ExpectedError: errors.New("connection lost"),
		},
		{
			Name: "Success. #3",
			SetupMocks: func() {
				mockFinancials.EXPECT().GetFinancialDetails(gomock.Any(), "u1").Return(details, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			got, err := finance.GetFinancialDetails(ctx, "u1")

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if diff := cmp.Diff(details, got); diff != "" {
					t.Errorf("Unexpected details (-want +got):\n%s", diff)
				}
			}
		})
	}
}
