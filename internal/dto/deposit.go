package dto

import (
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest is the payload for creating a time-deposit. The
// engine does not check the amount against the plan minimum; required only
// rejects a missing or zero amount at the transport boundary.
type CreateDepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PlanID string          `json:"planId" binding:"required"`
}

// DepositResponse is the API representation of a deposit.
type DepositResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	DurationDays    int64           `json:"durationDays"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	MaturityDate    time.Time       `json:"maturityDate"`
	AccruedInterest decimal.Decimal `json:"accruedInterest"`
	Status          string          `json:"status"`
	AutoRenewal     bool            `json:"autoRenewal"`
}

func ToDepositResponse(deposit *domain.Deposit) DepositResponse {
	return DepositResponse{
		ID:              deposit.DepositID,
		UserID:          deposit.UserID,
		Amount:          deposit.Amount,
		DurationDays:    deposit.DurationDays,
		InterestRate:    deposit.InterestRate,
		StartDate:       deposit.StartDate,
		MaturityDate:    deposit.MaturityDate,
		AccruedInterest: deposit.AccruedInterest,
		Status:          string(deposit.Status),
		AutoRenewal:     deposit.AutoRenewal,
	}
}

func ToDepositResponses(deposits []domain.Deposit) []DepositResponse {
	out := make([]DepositResponse, 0, len(deposits))
	for i := range deposits {
		out = append(out, ToDepositResponse(&deposits[i]))
	}
	return out
}
