package dto

import "github.com/shopspring/decimal"

// SummaryResponse carries the dashboard headline figures.
type SummaryResponse struct {
	TotalAccruedInterest decimal.Decimal `json:"totalAccruedInterest"`
	TotalActiveDeposits  decimal.Decimal `json:"totalActiveDeposits"`
	TotalActiveLoans     decimal.Decimal `json:"totalActiveLoans"`
	Balance              decimal.Decimal `json:"balance"`
}
