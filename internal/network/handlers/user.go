package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/services"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterUserHandler - new account registration
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validate.Struct(user); err != nil {
			http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
			return
		}

		created, err := i.RegisterUser(r.Context(), user)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", user.Email)
				http.Error(w, "email already exist", http.StatusConflict)
			} else {
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		token, err := i.GenerateJWT(created)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		logger.Info("User registered and authenticated", created.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}

// AuthenticateUserHandler - user authentication
func AuthenticateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		authenticated, err := i.AuthenticateUser(r.Context(), user.Email, user.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				logger.Warn("Authentication failed", user.Email)
				http.Error(w, "Invalid email/password", http.StatusUnauthorized)
				return
			}
			logger.Error("Error authenticate user", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		token, err := i.GenerateJWT(authenticated)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		logger.Info("User authenticated", user.Email)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	})
}
