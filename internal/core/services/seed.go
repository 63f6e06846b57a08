package services

import (
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// seedStrategy produces the deterministic seed bundle for one user role.
// Each role has its own strategy so the role-specific mock data is a typed
// variant rather than conditional branching inside one seeder.
type seedStrategy interface {
	bundle(user domain.User, now time.Time) domain.SeedBundle
}

func seedStrategyFor(role domain.UserRole) seedStrategy {
	switch role {
	case domain.RoleDepositor:
		return depositorSeed{}
	case domain.RoleBorrower:
		return borrowerSeed{}
	default:
		return adminSeed{}
	}
}

// Fixed reference dates of the mock data set.
var (
	seedJan10 = time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	seedJan15 = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	seedJan20 = time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	seedJan25 = time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)
	seedJan27 = time.Date(2024, time.January, 27, 0, 0, 0, 0, time.UTC)
	seedJan30 = time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)
	seedApr10 = time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
)

type depositorSeed struct{}

func (depositorSeed) bundle(user domain.User, now time.Time) domain.SeedBundle {
	return domain.SeedBundle{
		Deposits: []domain.Deposit{
			{
				DepositID:       "1",
				UserID:          user.UserID,
				Amount:          decimal.NewFromInt(25000),
				DurationDays:    15,
				InterestRate:    decimal.NewFromFloat(0.12),
				StartDate:       seedJan15,
				MaturityDate:    seedJan30,
				AccruedInterest: decimal.NewFromInt(1250),
				Status:          domain.DepositActive,
				AutoRenewal:     false,
			},
			{
				DepositID:       "2",
				UserID:          user.UserID,
				Amount:          decimal.NewFromInt(15000),
				DurationDays:    7,
				InterestRate:    decimal.NewFromFloat(0.08),
				StartDate:       seedJan20,
				MaturityDate:    seedJan27,
				AccruedInterest: decimal.NewFromInt(230),
				Status:          domain.DepositMatured,
				AutoRenewal:     true,
			},
		},
		Transactions: []domain.Transaction{
			{
				TransactionID: "1",
				UserID:        user.UserID,
				Type:          domain.TxnDeposit,
				Amount:        decimal.NewFromInt(25000),
				Date:          seedJan15,
				Description:   "Smart Saver Plan Deposit",
				Status:        domain.TxnCompleted,
			},
			{
				TransactionID: "2",
				UserID:        user.UserID,
				Type:          domain.TxnInterest,
				Amount:        decimal.NewFromInt(125),
				Date:          seedJan20,
				Description:   "Daily Interest Credit",
				Status:        domain.TxnCompleted,
			},
		},
		Notifications: []domain.Notification{
			{
				NotificationID: "1",
				UserID:         user.UserID,
				Title:          "Interest Credited",
				Message:        "Your daily interest of ₹125 has been credited to your account",
				Type:           domain.NotifySuccess,
				Read:           false,
				CreatedAt:      now,
			},
			{
				NotificationID: "2",
				UserID:         user.UserID,
				Title:          "Deposit Maturity Alert",
				Message:        "Your Quick Growth deposit will mature tomorrow",
				Type:           domain.NotifyInfo,
				Read:           false,
				CreatedAt:      now.Add(-24 * time.Hour),
			},
		},
	}
}

type borrowerSeed struct{}

func (borrowerSeed) bundle(user domain.User, now time.Time) domain.SeedBundle {
	return domain.SeedBundle{
		Loans: []domain.Loan{
			{
				LoanID:          "1",
				UserID:          user.UserID,
				Amount:          decimal.NewFromInt(50000),
				DurationDays:    90,
				InterestRate:    decimal.NewFromFloat(0.18),
				StartDate:       seedJan10,
				DueDate:         seedApr10,
				RemainingAmount: decimal.NewFromInt(35000),
				Status:          domain.LoanActive,
				// Pre-computed mock figure, not derived from the payment formula.
				MonthlyPayment: decimal.NewFromInt(18500),
				Purpose:        "Business expansion",
			},
		},
		Transactions: []domain.Transaction{
			{
				TransactionID: "1",
				UserID:        user.UserID,
				Type:          domain.TxnLoan,
				Amount:        decimal.NewFromInt(50000),
				Date:          seedJan10,
				Description:   "Business Loan Disbursement",
				Status:        domain.TxnCompleted,
			},
			{
				TransactionID: "2",
				UserID:        user.UserID,
				Type:          domain.TxnRepayment,
				Amount:        decimal.NewFromInt(15000),
				Date:          seedJan25,
				Description:   "Monthly Loan Repayment",
				Status:        domain.TxnCompleted,
			},
		},
		Notifications: loanReminderNotifications(user, now),
	}
}

type adminSeed struct{}

// Admins carry no deposits or loans; they get the same notification copy as
// every non-depositor role.
func (adminSeed) bundle(user domain.User, now time.Time) domain.SeedBundle {
	return domain.SeedBundle{
		Notifications: loanReminderNotifications(user, now),
	}
}

// loanReminderNotifications is the notification copy shared by all
// non-depositor roles. The first entry keeps the "Interest Credited" title
// even though its message is a loan reminder; that mismatch is part of the
// mock data set.
func loanReminderNotifications(user domain.User, now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			NotificationID: "1",
			UserID:         user.UserID,
			Title:          "Interest Credited",
			Message:        "Loan payment reminder: ₹18,500 due in 5 days",
			Type:           domain.NotifySuccess,
			Read:           false,
			CreatedAt:      now,
		},
		{
			NotificationID: "2",
			UserID:         user.UserID,
			Title:          "Payment Confirmation",
			Message:        "Your payment of ₹15,000 has been processed successfully",
			Type:           domain.NotifyInfo,
			Read:           false,
			CreatedAt:      now.Add(-24 * time.Hour),
		},
	}
}
