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
	InsertTicket = `INSERT INTO SUPPORT_TICKETS (id, user_id, subject, body, status)
						VALUES ($1, $2, $3, $4, $5)
						RETURNING id, user_id, subject, body, status, admin_reply, created_at, updated_at;`
	GetTicketsByUser = `SELECT id, user_id, subject, body, status, admin_reply, created_at, updated_at
						FROM SUPPORT_TICKETS WHERE user_id=$1 ORDER BY created_at DESC;`
	GetOpenTickets = `SELECT id, user_id, subject, body, status, admin_reply, created_at, updated_at
						FROM SUPPORT_TICKETS WHERE status='open' ORDER BY created_at;`
	AnswerTicket = `UPDATE SUPPORT_TICKETS
						SET status='answered', admin_reply=$2, updated_at=NOW()
						WHERE id=$1 AND status='open'
						RETURNING id, user_id, subject, body, status, admin_reply, created_at, updated_at;`
	CloseTicket = `UPDATE SUPPORT_TICKETS
						SET status='closed', updated_at=NOW()
						WHERE id=$1 AND user_id=$2 AND status <> 'closed';`
)

type TicketDatabase struct {
	DB *Database
}

// Store creation
func NewTicketsStorage(db *Database) TicketsStorage {
	return &TicketDatabase{DB: db}
}

func (s *TicketDatabase) AddTicket(ctx context.Context, ticket models.TicketData) (*models.TicketData, error) {
	row := s.DB.Pool.QueryRow(ctx, InsertTicket,
		uuid.New().String(), ticket.UserID, ticket.Subject, ticket.Body, models.TicketStatusOpen)
	created, err := scanTicket(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add ticket: %w", err)
	}
	return created, nil
}

func (s *TicketDatabase) GetTicketsByUser(ctx context.Context, userID string) ([]models.TicketData, error) {
	return s.queryTickets(ctx, GetTicketsByUser, userID)
}

func (s *TicketDatabase) GetOpenTickets(ctx context.Context) ([]models.TicketData, error) {
	return s.queryTickets(ctx, GetOpenTickets)
}

// ReplyTicket - open -> answered, guarded by the conditional UPDATE
func (s *TicketDatabase) ReplyTicket(ctx context.Context, id string, body string) (*models.TicketData, error) {
	ticket, err := scanTicket(s.DB.Pool.QueryRow(ctx, AnswerTicket, id, body))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTicketNotOpen
		}
		return nil, fmt.Errorf("failed to reply ticket: %w", err)
	}
	return ticket, nil
}

func (s *TicketDatabase) CloseTicket(ctx context.Context, id string, userID string) error {
	tag, err := s.DB.Pool.Exec(ctx, CloseTicket, id, userID)
	if err != nil {
		return fmt.Errorf("failed to close ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TicketDatabase) queryTickets(ctx context.Context, query string, args ...any) ([]models.TicketData, error) {
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.TicketData
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return tickets, fmt.Errorf("failed scan ticket data: %w", err)
		}
		tickets = append(tickets, *ticket)
	}
	return tickets, rows.Err()
}

func scanTicket(row pgx.Row) (*models.TicketData, error) {
	var ticket models.TicketData
	err := row.Scan(
		&ticket.ID,
		&ticket.UserID,
		&ticket.Subject,
		&ticket.Body,
		&ticket.Status,
		&ticket.AdminReply,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
