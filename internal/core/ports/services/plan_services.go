package services

import (
	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// PlanSvcFacade exposes the fixed deposit plan catalog. The catalog is
// static in-process data, so its accessors never block and take no context.
type PlanSvcFacade interface {
	// ListPlans returns all plans in insertion order.
	ListPlans() []domain.DepositPlan
	// FindPlan returns apperrors.ErrInvalidPlan when the id does not resolve.
	FindPlan(planID string) (*domain.DepositPlan, error)
}
