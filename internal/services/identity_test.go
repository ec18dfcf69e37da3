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
	"golang.org/x/crypto/bcrypt"
)

func TestIdentityService_RegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockUsers)

	testCases := []struct {
		Name          string
		User          models.UserRequest
		SetupMocks    func()
		ExpectedError error
		ExpectedRole  string
	}{
		{
			Name: "Error. Email already taken #1",
			User: models.UserRequest{Email: "ana@example.com", Password: "secret", Name: "Ana"},
			SetupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), "ana@example.com", gomock.Any(), "Ana", models.RoleBuyer).Return("", storage.ErrAlreadyExists)
			},
			ExpectedError: ErrUserAlreadyExists,
		},
		{
			Name: "Success. Defaults to buyer #2",
			User: models.UserRequest{Email: "ana@example.com", Password: "secret", Name: "Ana"},
			SetupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), "ana@example.com", gomock.Any(), "Ana", models.RoleBuyer).Return("u1", nil)
			},
			ExpectedError: nil,
			ExpectedRole:  models.RoleBuyer,
		},
		{
			Name: "Success. Seller role kept #3",
			User: models.UserRequest{Email: "joao@example.com", Password: "secret", Name: "Joao", Role: models.RoleSeller},
			SetupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), "joao@example.com", gomock.Any(), "Joao", models.RoleSeller).Return("u2", nil)
			},
			ExpectedError: nil,
			ExpectedRole:  models.RoleSeller,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, err := identity.RegisterUser(ctx, tc.User)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && user.Role != tc.ExpectedRole {
				t.Errorf("Expected role '%s', got: '%s'", tc.ExpectedRole, user.Role)
			}
		})
	}
}

func TestIdentityService_AuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockUsers)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	testCases := []struct {
		Name          string
		Email         string
		Password      string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:     "Error. Unknown email #1",
			Email:    "ghost@example.com",
			Password: "secret",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrUserNotFound)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name:     "Error. Wrong password #2",
			Email:    "ana@example.com",
			Password: "nope",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "ana@example.com").Return(&models.UserData{
					UserID: "u1", Email: "ana@example.com", PasswordHash: string(hash),
				}, nil)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name:     "Error. Storage failure #3",
			Email:    "ana@example.com",
			Password: "secret",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "ana@example.com").Return(nil, errors.New("failed to get user"))
			},
			ExpectedError: errors.New("failed to get user"),
		},
		{
			Name:     "Success. #4",
			Email:    "ana@example.com",
			Password: "secret",
			SetupMocks: func() {
				mockUsers.EXPECT().GetUser(gomock.Any(), "ana@example.com").Return(&models.UserData{
					UserID: "u1", Email: "ana@example.com", PasswordHash: string(hash), Role: models.RoleSeller,
				}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, err := identity.AuthenticateUser(ctx, tc.Email, tc.Password)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil && user.UserID != "u1" {
				t.Errorf("Expected user id 'u1', got: '%s'", user.UserID)
			}
		})
	}
}

func TestIdentityService_GenerateJWT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	identity := NewIdentity(config, mockUsers)

	tokenString, err := identity.GenerateJWT(&models.UserData{UserID: "u1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	token, err := identity.GetTokenAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("failed to decode token: %v", err)
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		t.Fatalf("failed to read claims: %v", err)
	}
	if claims["user_id"] != "u1" {
		t.Errorf("Expected user_id 'u1', got: '%v'", claims["user_id"])
	}
	if claims["role"] != models.RoleAdmin {
		t.Errorf("Expected role '%s', got: '%v'", models.RoleAdmin, claims["role"])
	}
}
