package services

import (
	"context"
	"errors"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrTicketNotOpen  = errors.New("ticket is not open")
	ErrTicketNotFound = errors.New("ticket not found")
)

type TicketsService interface {
	CreateTicket(ctx context.Context, userID string, req models.TicketRequest) (*models.TicketData, error)
	GetTickets(ctx context.Context, userID string) ([]models.TicketData, error)
	GetOpenTickets(ctx context.Context) ([]models.TicketData, error)
	ReplyTicket(ctx context.Context, id string, body string) (*models.TicketData, error)
	CloseTicket(ctx context.Context, id string, userID string) error
}

type Tickets struct {
	Storage  storage.TicketsStorage
	Notifier Notifier
}

// Service creation
func NewTickets(storage storage.TicketsStorage, notifier Notifier) TicketsService {
	return &Tickets{Storage: storage, Notifier: notifier}
}

func (s *Tickets) CreateTicket(ctx context.Context, userID string, req models.TicketRequest) (*models.TicketData, error) {
	ticket, err := s.Storage.AddTicket(ctx, models.TicketData{
		UserID:  userID,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		logger.Error("Failed to add ticket", zap.Error(err))
		return nil, err
	}
	return ticket, nil
}

func (s *Tickets) GetTickets(ctx context.Context, userID string) ([]models.TicketData, error) {
	tickets, err := s.Storage.GetTicketsByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get tickets:", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

func (s *Tickets) GetOpenTickets(ctx context.Context) ([]models.TicketData, error) {
	tickets, err := s.Storage.GetOpenTickets(ctx)
	if err != nil {
		logger.Error("Failed to get open tickets:", zap.Error(err))
		return nil, err
	}
	return tickets, nil
}

// ReplyTicket - admin answer, open -> answered
func (s *Tickets) ReplyTicket(ctx context.Context, id string, body string) (*models.TicketData, error) {
	ticket, err := s.Storage.ReplyTicket(ctx, id, body)
	if err != nil {
		if errors.Is(err, storage.ErrTicketNotOpen) {
			return nil, ErrTicketNotOpen
		}
		logger.Error("Failed to reply ticket", zap.Error(err))
		return nil, err
	}

	s.Notifier.Notify(ctx, ticket.UserID, models.NotificationTicketAnswered,
		"Support replied", "Your ticket \""+ticket.Subject+"\" was answered.")
	return ticket, nil
}

func (s *Tickets) CloseTicket(ctx context.Context, id string, userID string) error {
	err := s.Storage.CloseTicket(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTicketNotFound
		}
		logger.Error("Failed to close ticket", zap.Error(err))
		return err
	}
	return nil
}
