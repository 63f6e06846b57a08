package dto

import (
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PlanResponse is the API representation of a deposit plan.
type PlanResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	DurationDays       int64           `json:"durationDays"`
	AnnualInterestRate decimal.Decimal `json:"annualInterestRate"`
	MinAmount          decimal.Decimal `json:"minAmount"`
	Description        string          `json:"description"`
	Features           []string        `json:"features"`
}

func ToPlanResponse(plan *domain.DepositPlan) PlanResponse {
	return PlanResponse{
		ID:                 plan.PlanID,
		Name:               plan.Name,
		DurationDays:       plan.DurationDays,
		AnnualInterestRate: plan.AnnualInterestRate,
		MinAmount:          plan.MinAmount,
		Description:        plan.Description,
		Features:           plan.Features,
	}
}

func ToPlanResponses(plans []domain.DepositPlan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, ToPlanResponse(&plans[i]))
	}
	return out
}
