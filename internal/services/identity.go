package services

import (
	"context"
	"errors"
	"time"

	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

type IdentityService interface {
	RegisterUser(ctx context.Context, user models.UserRequest) (*models.UserData, error)
	AuthenticateUser(ctx context.Context, email string, password string) (*models.UserData, error)
	GenerateJWT(user *models.UserData) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Users   storage.UsersStorage
}

// Service creation
func NewIdentity(cfg config.Config, users storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users}
}

// RegisterUser - registers a new account, buyer unless stated otherwise
func (i *Identity) RegisterUser(ctx context.Context, user models.UserRequest) (*models.UserData, error) {
	logger.Info("Register user:", user.Email)

	role := user.Role
	if role == "" {
		role = models.RoleBuyer
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	userID, err := i.Users.AddUser(ctx, user.Email, string(hashedPassword), user.Name, role)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", user.Email)
			return nil, ErrUserAlreadyExists
		}
		logger.Error("Error registering user", user.Email, err)
		return nil, err
	}

	return &models.UserData{UserID: userID, Email: user.Email, Name: user.Name, Role: role}, nil
}

// AuthenticateUser - verifies the credentials and returns the account
func (i *Identity) AuthenticateUser(ctx context.Context, email string, password string) (*models.UserData, error) {
	logger.Info("Authenticate user", email)

	user, err := i.Users.GetUser(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Invalid password", email)
		return nil, ErrInvalidCredentials
	}

	logger.Info("User authenticated", email)
	return user, nil
}

// GenerateJWT - builds the token string carrying id and role
func (i *Identity) GenerateJWT(user *models.UserData) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"user_id": user.UserID,
		"role":    user.Role,
		"exp":     expirationTime,
	})
	return tokenString, err
}

// GetTokenAuth - returns the JWTAuth pointer for the chi verifier
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
