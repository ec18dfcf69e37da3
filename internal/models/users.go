package models

// User roles
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// UserRequest - registration and authentication payload, comes from outside
type UserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

// UserData - user model from the store
type UserData struct {
	UserID       string
	Email        string
	PasswordHash string
	Name         string
	Role         string
}
