package domain

import "github.com/shopspring/decimal"

// DepositPlan is an immutable template defining duration, rate and minimum
// amount for deposits. The catalog is fixed at process start and never
// mutated at runtime.
type DepositPlan struct {
	PlanID             string          `json:"id"`
	Name               string          `json:"name"`
	DurationDays       int64           `json:"durationDays"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	MinAmount          decimal.Decimal `json:"minAmount"`
	Description        string          `json:"description"`
	Features           []string        `json:"features"`
}
