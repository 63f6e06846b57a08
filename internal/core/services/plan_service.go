package services

import (
	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// planService serves the fixed investment plan catalog. The three plans are
// defined once at construction and never mutated.
type planService struct {
	plans []domain.DepositPlan
}

var _ portssvc.PlanSvcFacade = (*planService)(nil)

// NewPlanService builds the catalog.
func NewPlanService() portssvc.PlanSvcFacade {
	return &planService{
		plans: []domain.DepositPlan{
			{
				PlanID:             "1",
				Name:               "Quick Growth",
				DurationDays:       7,
				AnnualInterestRate: decimal.NewFromFloat(0.08),
				MinAmount:          decimal.NewFromInt(1000),
				Description:        "Perfect for short-term savings with daily returns",
				Features:           []string{"Daily interest payout", "No lock-in period", "Instant withdrawal after maturity"},
			},
			{
				PlanID:             "2",
				Name:               "Smart Saver",
				DurationDays:       15,
				AnnualInterestRate: decimal.NewFromFloat(0.12),
				MinAmount:          decimal.NewFromInt(5000),
				Description:        "Balanced growth for medium-term investments",
				Features:           []string{"Higher returns", "Flexible withdrawal", "Auto-renewal option"},
			},
			{
				PlanID:             "3",
				Name:               "Premium Plus",
				DurationDays:       30,
				AnnualInterestRate: decimal.NewFromFloat(0.15),
				MinAmount:          decimal.NewFromInt(10000),
				Description:        "Maximum returns for committed investors",
				Features:           []string{"Highest interest rate", "Priority support", "Bonus rewards"},
			},
		},
	}
}

func (s *planService) ListPlans() []domain.DepositPlan {
	out := make([]domain.DepositPlan, len(s.plans))
	copy(out, s.plans)
	return out
}

func (s *planService) FindPlan(planID string) (*domain.DepositPlan, error) {
	for i := range s.plans {
		if s.plans[i].PlanID == planID {
			p := s.plans[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrInvalidPlan
}
