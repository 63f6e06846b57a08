package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus is the lifecycle state of a deposit. The engine only ever
// moves active deposits to withdrawn; matured exists for seed data and the
// remote contract, nothing in the engine sets it.
type DepositStatus string

const (
	DepositActive    DepositStatus = "active"
	DepositMatured   DepositStatus = "matured"
	DepositWithdrawn DepositStatus = "withdrawn"
)

// Deposit is a fixed-term interest-bearing placement of funds.
// MaturityDate is always StartDate plus the plan duration.
type Deposit struct {
	DepositID       string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	DurationDays    int64           `json:"durationDays"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	MaturityDate    time.Time       `json:"maturityDate"`
	AccruedInterest decimal.Decimal `json:"accruedInterest"`
	Status          DepositStatus   `json:"status"`
	AutoRenewal     bool            `json:"autoRenewal"`
}
