package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole determines which dashboard a user sees and which seed bundle
// the ledger is initialized with.
type UserRole string

const (
	RoleDepositor UserRole = "depositor"
	RoleBorrower  UserRole = "borrower"
	RoleAdmin     UserRole = "admin"
)

// User represents an authenticated identity in the domain.
type User struct {
	UserID    string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      UserRole        `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}
