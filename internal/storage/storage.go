package storage

import (
	"context"
	"errors"
	"time"

	"github.com/ebarbosa87/pixmart/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, email string, passwordHash string, name string, role string) (string, error)
	GetUser(ctx context.Context, email string) (*models.UserData, error)
}

type ListingsStorage interface {
	AddListing(ctx context.Context, listing models.ListingData) (*models.ListingData, error)
	GetListing(ctx context.Context, id string) (*models.ListingData, error)
	GetListingsBySeller(ctx context.Context, sellerID string) ([]models.ListingData, error)
	SetListingStatus(ctx context.Context, id string, sellerID string, status string) error
	SetListingImage(ctx context.Context, id string, sellerID string, url string) error
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderData) (*models.OrderData, error)
	GetOrder(ctx context.Context, id string) (*models.OrderData, error)
	GetOrdersByBuyer(ctx context.Context, buyerID string) ([]models.OrderData, error)
	GetOrdersBySeller(ctx context.Context, sellerID string) ([]models.OrderData, error)
	GetCompletedOrders(ctx context.Context, sellerID string) ([]models.OrderData, error)
	MarkOrderCompleted(ctx context.Context, id string, paymentID string) (*models.OrderData, error)
	SetOrderStatus(ctx context.Context, id string, status string) error
	SetOrderPayment(ctx context.Context, id string, paymentID string) error
	GetStalePendingOrders(ctx context.Context, olderThan time.Duration, limit int) ([]models.OrderData, error)
}

type WithdrawalsStorage interface {
	CreateWithdrawal(ctx context.Context, withdrawal models.WithdrawalData) (*models.WithdrawalData, error)
	GetWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error)
	GetActiveWithdrawals(ctx context.Context, userID string) ([]models.WithdrawalData, error)
	GetPendingWithdrawals(ctx context.Context) ([]models.WithdrawalData, error)
	ResolveWithdrawal(ctx context.Context, id string, approve bool, note string, now time.Time) (*models.WithdrawalData, error)
}

type FinancialsStorage interface {
	SaveFinancialDetails(ctx context.Context, details models.FinancialDetails) error
	GetFinancialDetails(ctx context.Context, userID string) (*models.FinancialDetails, error)
}

type DisputesStorage interface {
	OpenDispute(ctx context.Context, dispute models.DisputeData) (*models.DisputeData, error)
	GetOpenDisputes(ctx context.Context) ([]models.DisputeData, error)
	ResolveDispute(ctx context.Context, id string, outcome string, note string, now time.Time) (*models.DisputeData, error)
}

type TicketsStorage interface {
	AddTicket(ctx context.Context, ticket models.TicketData) (*models.TicketData, error)
	GetTicketsByUser(ctx context.Context, userID string) ([]models.TicketData, error)
	GetOpenTickets(ctx context.Context) ([]models.TicketData, error)
	ReplyTicket(ctx context.Context, id string, body string) (*models.TicketData, error)
	CloseTicket(ctx context.Context, id string, userID string) error
}

type NotificationsStorage interface {
	AddNotification(ctx context.Context, notification models.NotificationData) (*models.NotificationData, error)
	GetNotifications(ctx context.Context, userID string) ([]models.NotificationData, error)
	GetNotificationsAfter(ctx context.Context, after time.Time) ([]models.NotificationData, error)
	MarkRead(ctx context.Context, userID string, ids []string) error
}

type Storage struct {
	Users         UsersStorage
	Listings      ListingsStorage
	Orders        OrdersStorage
	Withdrawals   WithdrawalsStorage
	Financials    FinancialsStorage
	Disputes      DisputesStorage
	Tickets       TicketsStorage
	Notifications NotificationsStorage
}

// Store creation
func NewStorage(db *Database) Storage {
	return Storage{
		Users:         NewUsersStorage(db),
		Listings:      NewListingsStorage(db),
		Orders:        NewOrdersStorage(db),
		Withdrawals:   NewWithdrawalsStorage(db),
		Financials:    NewFinancialsStorage(db),
		Disputes:      NewDisputesStorage(db),
		Tickets:       NewTicketsStorage(db),
		Notifications: NewNotificationsStorage(db),
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrListingNotFound    = errors.New("listing not found")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
	ErrNotFound           = errors.New("not found")

	ErrAlreadyExists = errors.New("already exists")

	// withdrawal creation recomputes the available balance inside the same
	// transaction, this is the rejection it reports
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")

	// terminal-state guards for admin transitions
	ErrWithdrawalNotPending = errors.New("withdrawal is not pending")
	ErrDisputeNotOpen       = errors.New("dispute is not open")
	ErrTicketNotOpen        = errors.New("ticket is not open")

	// the dispute transaction only disputes a completed order
	ErrOrderNotDisputable = errors.New("order is not disputable")
)
