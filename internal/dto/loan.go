package dto

import (
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest is the payload for a loan application. DurationDays
// must be positive or the payment estimate would divide by zero months.
type CreateLoanRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	DurationDays int64           `json:"durationDays" binding:"required,gt=0"`
	Purpose      string          `json:"purpose" binding:"required"`
}

// LoanResponse is the API representation of a loan.
type LoanResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	DurationDays    int64           `json:"durationDays"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	StartDate       time.Time       `json:"startDate"`
	DueDate         time.Time       `json:"dueDate"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Status          string          `json:"status"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	Purpose         string          `json:"purpose"`
}

func ToLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		ID:              loan.LoanID,
		UserID:          loan.UserID,
		Amount:          loan.Amount,
		DurationDays:    loan.DurationDays,
		InterestRate:    loan.InterestRate,
		StartDate:       loan.StartDate,
		DueDate:         loan.DueDate,
		RemainingAmount: loan.RemainingAmount,
		Status:          string(loan.Status),
		MonthlyPayment:  loan.MonthlyPayment,
		Purpose:         loan.Purpose,
	}
}

func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, ToLoanResponse(&loans[i]))
	}
	return out
}
