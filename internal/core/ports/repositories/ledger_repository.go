package repositories

import (
	"context"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// LedgerRepository stores the four session-scoped ledger collections.
// Collections are keyed by session (the user id); every accessor returns
// entities in append order. Implementations must treat ReplaceAll as a full
// replacement, never a merge.
type LedgerRepository interface {
	ReplaceAll(ctx context.Context, sessionID string, seed domain.SeedBundle) error
	Clear(ctx context.Context, sessionID string) error

	SaveDeposit(ctx context.Context, sessionID string, deposit domain.Deposit) error
	FindDepositByID(ctx context.Context, sessionID string, depositID string) (*domain.Deposit, error)
	UpdateDepositStatus(ctx context.Context, sessionID string, depositID string, status domain.DepositStatus) error
	ListDeposits(ctx context.Context, sessionID string) ([]domain.Deposit, error)

	SaveLoan(ctx context.Context, sessionID string, loan domain.Loan) error
	ListLoans(ctx context.Context, sessionID string) ([]domain.Loan, error)

	SaveTransaction(ctx context.Context, sessionID string, txn domain.Transaction) error
	ListTransactions(ctx context.Context, sessionID string) ([]domain.Transaction, error)

	SaveNotification(ctx context.Context, sessionID string, notification domain.Notification) error
	MarkNotificationRead(ctx context.Context, sessionID string, notificationID string) error
	ListNotifications(ctx context.Context, sessionID string) ([]domain.Notification, error)
}
