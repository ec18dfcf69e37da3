package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	InsertUser = `INSERT INTO USERS (id, email, password, name, role)
						VALUES ($1, $2, $3, $4, $5)
						ON CONFLICT (email) DO NOTHING
						RETURNING id;`
	GetUserByEmail = `SELECT id, email, password, name, role FROM USERS WHERE email=$1;`
)

type UserDatabase struct {
	DB *Database
}

// Store creation
func NewUsersStorage(db *Database) UsersStorage {
	return &UserDatabase{DB: db}
}

func (s *UserDatabase) AddUser(ctx context.Context, email string, passwordHash string, name string, role string) (string, error) {
	userID := uuid.New().String()

	var insertedID string
	err := s.DB.Pool.QueryRow(ctx, InsertUser, userID, email, passwordHash, name, role).Scan(&insertedID)

	if err == nil {
		return insertedID, nil
	}

	// DO NOTHING swallows the conflict, QueryRow then reports no rows
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrAlreadyExists
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return "", ErrAlreadyExists
	}

	return "", fmt.Errorf("failed to add user: %w", err)
}

func (s *UserDatabase) GetUser(ctx context.Context, email string) (*models.UserData, error) {
	return s.scanUser(s.DB.Pool.QueryRow(ctx, GetUserByEmail, email))
}

func (s *UserDatabase) scanUser(row pgx.Row) (*models.UserData, error) {
	var user models.UserData
	err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
