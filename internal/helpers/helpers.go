package helpers

import (
	"context"
	"fmt"

	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

// GetUserID - extracts the authenticated user id from the JWT token context
func GetUserID(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	userID, ok := claims["user_id"].(string)
	if !ok {
		logger.Warn("Undefined user id from token")
		return "", fmt.Errorf("undefined user id")
	}
	return userID, nil
}

// GetRole - extracts the user role from the JWT token context
func GetRole(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	role, ok := claims["role"].(string)
	if !ok {
		logger.Warn("Undefined role from token")
		return "", fmt.Errorf("undefined role")
	}
	return role, nil
}

// IsAdmin - reports whether the token carries the admin role
func IsAdmin(context context.Context) bool {
	role, err := GetRole(context)
	return err == nil && role == models.RoleAdmin
}
