package dto

import (
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the payload for user registration. Only depositor and
// borrower roles are self-registrable; admins exist only as seed users.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,selfregisterrole"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login or registration.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterCustomValidators installs custom validation rules on gin's
// validator engine. Must be called once during startup.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("selfregisterrole", func(fl validator.FieldLevel) bool {
			role := domain.UserRole(fl.Field().String())
			return role == domain.RoleDepositor || role == domain.RoleBorrower
		})
	}
}
