package memory

import (
	"context"
	"sync"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
)

// ledgerState holds one session's four collections, in append order.
type ledgerState struct {
	deposits      []domain.Deposit
	loans         []domain.Loan
	transactions  []domain.Transaction
	notifications []domain.Notification
}

// LedgerRepository is the in-memory implementation of the ledger collections.
// The ledger is deliberately not persisted: a restart rebuilds every session
// from its seed bundle. The mutex allows multiple concurrent sessions even
// though each session only ever has one mutation in flight.
type LedgerRepository struct {
	mu       sync.RWMutex
	sessions map[string]*ledgerState
}

// NewLedgerRepository creates an empty in-memory ledger repository.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{sessions: make(map[string]*ledgerState)}
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

// session returns the state for sessionID, creating it when absent.
// Caller must hold the write lock.
func (r *LedgerRepository) session(sessionID string) *ledgerState {
	st, ok := r.sessions[sessionID]
	if !ok {
		st = &ledgerState{}
		r.sessions[sessionID] = st
	}
	return st
}

// ReplaceAll swaps in the seed bundle wholesale, discarding anything the
// session accumulated before.
func (r *LedgerRepository) ReplaceAll(_ context.Context, sessionID string, seed domain.SeedBundle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := r.session(sessionID)
	st.deposits = append([]domain.Deposit(nil), seed.Deposits...)
	st.loans = append([]domain.Loan(nil), seed.Loans...)
	st.transactions = append([]domain.Transaction(nil), seed.Transactions...)
	st.notifications = append([]domain.Notification(nil), seed.Notifications...)
	return nil
}

func (r *LedgerRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *LedgerRepository) SaveDeposit(_ context.Context, sessionID string, deposit domain.Deposit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.session(sessionID)
	st.deposits = append(st.deposits, deposit)
	return nil
}

func (r *LedgerRepository) FindDepositByID(_ context.Context, sessionID string, depositID string) (*domain.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	for i := range st.deposits {
		if st.deposits[i].DepositID == depositID {
			d := st.deposits[i]
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *LedgerRepository) UpdateDepositStatus(_ context.Context, sessionID string, depositID string, status domain.DepositStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for i := range st.deposits {
		if st.deposits[i].DepositID == depositID {
			st.deposits[i].Status = status
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *LedgerRepository) ListDeposits(_ context.Context, sessionID string) ([]domain.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return []domain.Deposit{}, nil
	}
	return append([]domain.Deposit(nil), st.deposits...), nil
}

func (r *LedgerRepository) SaveLoan(_ context.Context, sessionID string, loan domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.session(sessionID)
	st.loans = append(st.loans, loan)
	return nil
}

func (r *LedgerRepository) ListLoans(_ context.Context, sessionID string) ([]domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return []domain.Loan{}, nil
	}
	return append([]domain.Loan(nil), st.loans...), nil
}

func (r *LedgerRepository) SaveTransaction(_ context.Context, sessionID string, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.session(sessionID)
	st.transactions = append(st.transactions, txn)
	return nil
}

func (r *LedgerRepository) ListTransactions(_ context.Context, sessionID string) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return []domain.Transaction{}, nil
	}
	return append([]domain.Transaction(nil), st.transactions...), nil
}

func (r *LedgerRepository) SaveNotification(_ context.Context, sessionID string, notification domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.session(sessionID)
	st.notifications = append(st.notifications, notification)
	return nil
}

// MarkNotificationRead flips read to true. The transition is one-way; marking
// an already-read notification again is a no-op success.
func (r *LedgerRepository) MarkNotificationRead(_ context.Context, sessionID string, notificationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for i := range st.notifications {
		if st.notifications[i].NotificationID == notificationID {
			st.notifications[i].Read = true
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *LedgerRepository) ListNotifications(_ context.Context, sessionID string) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.sessions[sessionID]
	if !ok {
		return []domain.Notification{}, nil
	}
	return append([]domain.Notification(nil), st.notifications...), nil
}
