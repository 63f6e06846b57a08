package services

import (
	"context"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerSvcFacade is the ledger engine: it owns the session-scoped deposit,
// loan, transaction and notification collections and derives the dashboard
// aggregates. Every mutator requires an authenticated user id and returns
// apperrors.ErrNotAuthenticated when it is empty, apperrors.ErrNotFound when
// a referenced entity is absent.
type LedgerSvcFacade interface {
	// ReseedForUser replaces all four collections of the user's session with
	// the deterministic seed bundle for the user's role.
	ReseedForUser(ctx context.Context, user domain.User) error
	// ClearForUser empties all four collections of the user's session.
	ClearForUser(ctx context.Context, userID string) error

	CreateDeposit(ctx context.Context, userID string, amount decimal.Decimal, planID string) (*domain.Deposit, error)
	CreateLoan(ctx context.Context, userID string, amount decimal.Decimal, durationDays int64, purpose string) (*domain.Loan, error)
	WithdrawDeposit(ctx context.Context, userID string, depositID string) (*domain.Deposit, error)
	MarkNotificationRead(ctx context.Context, userID string, notificationID string) error

	ListDeposits(ctx context.Context, userID string) ([]domain.Deposit, error)
	ListLoans(ctx context.Context, userID string) ([]domain.Loan, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error)
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)

	// TotalAccruedInterest sums accrued interest over all deposits regardless
	// of status.
	TotalAccruedInterest(ctx context.Context, userID string) (decimal.Decimal, error)
	// TotalActiveDepositAmount sums amounts over active deposits only.
	TotalActiveDepositAmount(ctx context.Context, userID string) (decimal.Decimal, error)
	// TotalActiveLoanAmount sums amounts over active loans only.
	TotalActiveLoanAmount(ctx context.Context, userID string) (decimal.Decimal, error)
}
