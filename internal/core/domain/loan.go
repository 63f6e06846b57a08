package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan. Live applications are always
// created pending; the remaining states appear only in seed data and remote
// records, no engine operation transitions into them.
type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanApproved  LoanStatus = "approved"
	LoanActive    LoanStatus = "active"
	LoanCompleted LoanStatus = "completed"
	LoanOverdue   LoanStatus = "overdue"
)

// Loan is borrowed principal with a duration-based repayment obligation.
// MonthlyPayment is the total repayable (principal plus pro-rated simple
// interest) divided by the number of 30-day months in the duration.
type Loan struct {
	LoanID          string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	DurationDays    int64           `json:"durationDays"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	DueDate         time.Time       `json:"dueDate"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          LoanStatus      `json:"status"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	Purpose         string          `json:"purpose"`
}
