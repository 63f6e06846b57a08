package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// loanAnnualRate is the fixed annual interest rate applied to every loan.
var loanAnnualRate = decimal.NewFromFloat(0.18)

// ledgerService implements the ledger engine on top of the session-scoped
// ledger repository. When a remote gateway is configured, created records
// are mirrored to it best-effort; a mirror failure never affects the local
// result.
type ledgerService struct {
	repo    portsrepo.LedgerRepository
	plans   portssvc.PlanSvcFacade
	gateway portsrepo.RemoteGateway // nil disables mirroring
	store   portsrepo.SessionStore  // for credential invalidation on gateway 401
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// NewLedgerService creates the ledger engine. gateway may be nil.
func NewLedgerService(repo portsrepo.LedgerRepository, plans portssvc.PlanSvcFacade, gateway portsrepo.RemoteGateway, store portsrepo.SessionStore) portssvc.LedgerSvcFacade {
	return &ledgerService{repo: repo, plans: plans, gateway: gateway, store: store}
}

func (s *ledgerService) ReseedForUser(ctx context.Context, user domain.User) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	seed := seedStrategyFor(user.Role).bundle(user, time.Now())
	if err := s.repo.ReplaceAll(ctx, user.UserID, seed); err != nil {
		return fmt.Errorf("reseed ledger: %w", err)
	}

	logger.Info("Ledger reseeded",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
	)
	return nil
}

func (s *ledgerService) ClearForUser(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return s.repo.Clear(ctx, userID)
}

// CreateDeposit allocates a new active deposit from the given plan and
// appends the matching transaction and notification. It does not validate
// the amount against the plan minimum or the user's balance; that is the
// caller's responsibility.
func (s *ledgerService) CreateDeposit(ctx context.Context, userID string, amount decimal.Decimal, planID string) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	plan, err := s.plans.FindPlan(planID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deposit := domain.Deposit{
		DepositID:       uuid.NewString(),
		UserID:          userID,
		Amount:          amount,
		DurationDays:    plan.DurationDays,
		InterestRate:    plan.AnnualInterestRate,
		StartDate:       now,
		MaturityDate:    now.Add(time.Duration(plan.DurationDays) * 24 * time.Hour),
		AccruedInterest: decimal.Zero,
		Status:          domain.DepositActive,
		AutoRenewal:     false,
	}
	if err := s.repo.SaveDeposit(ctx, userID, deposit); err != nil {
		return nil, fmt.Errorf("save deposit: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.TxnDeposit,
		Amount:        amount,
		Date:          now,
		Description:   plan.Name + " Plan Deposit",
		Status:        domain.TxnCompleted,
	}
	if err := s.repo.SaveTransaction(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("save deposit transaction: %w", err)
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          "Deposit Created Successfully",
		Message:        fmt.Sprintf("Your deposit of ₹%s in %s plan has been activated", amount.String(), plan.Name),
		Type:           domain.NotifySuccess,
		Read:           false,
		CreatedAt:      now,
	}
	if err := s.repo.SaveNotification(ctx, userID, notification); err != nil {
		return nil, fmt.Errorf("save deposit notification: %w", err)
	}

	s.mirror(ctx, "deposit", func() error { return s.gateway.CreateDeposit(ctx, deposit) })
	s.mirror(ctx, "deposit transaction", func() error { return s.gateway.CreateTransaction(ctx, txn) })

	logger.Info("Deposit created",
		slog.String("deposit_id", deposit.DepositID),
		slog.String("plan_id", plan.PlanID),
		slog.String("amount", amount.String()),
	)
	return &deposit, nil
}

// CreateLoan allocates a pending loan application with the fixed annual rate
// and the 30-day-month payment estimate. No transaction is appended here;
// disbursement records exist only in seed data.
func (s *ledgerService) CreateLoan(ctx context.Context, userID string, amount decimal.Decimal, durationDays int64, purpose string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	if durationDays <= 0 {
		return nil, fmt.Errorf("%w: loan duration must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	loan := domain.Loan{
		LoanID:          uuid.NewString(),
		UserID:          userID,
		Amount:          amount,
		DurationDays:    durationDays,
		InterestRate:    loanAnnualRate,
		StartDate:       now,
		DueDate:         now.Add(time.Duration(durationDays) * 24 * time.Hour),
		RemainingAmount: amount,
		Status:          domain.LoanPending,
		MonthlyPayment:  MonthlyPayment(amount, durationDays),
		Purpose:         purpose,
	}
	if err := s.repo.SaveLoan(ctx, userID, loan); err != nil {
		return nil, fmt.Errorf("save loan: %w", err)
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          "Loan Application Submitted",
		Message:        fmt.Sprintf("Your loan application for ₹%s is under review", amount.String()),
		Type:           domain.NotifyInfo,
		Read:           false,
		CreatedAt:      now,
	}
	if err := s.repo.SaveNotification(ctx, userID, notification); err != nil {
		return nil, fmt.Errorf("save loan notification: %w", err)
	}

	s.mirror(ctx, "loan", func() error { return s.gateway.CreateLoan(ctx, loan) })

	logger.Info("Loan application created",
		slog.String("loan_id", loan.LoanID),
		slog.String("amount", amount.String()),
		slog.Int64("duration_days", durationDays),
	)
	return &loan, nil
}

// WithdrawDeposit sets the deposit to withdrawn and appends a withdrawal
// transaction for amount plus accrued interest. The status write is
// unconditional: withdrawing an already-withdrawn deposit overwrites the
// status again and appends another transaction.
func (s *ledgerService) WithdrawDeposit(ctx context.Context, userID string, depositID string) (*domain.Deposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}

	deposit, err := s.repo.FindDepositByID(ctx, userID, depositID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateDepositStatus(ctx, userID, depositID, domain.DepositWithdrawn); err != nil {
		return nil, fmt.Errorf("update deposit status: %w", err)
	}
	deposit.Status = domain.DepositWithdrawn

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.TxnWithdrawal,
		Amount:        deposit.Amount.Add(deposit.AccruedInterest),
		Date:          time.Now(),
		Description:   "Deposit Withdrawal",
		Status:        domain.TxnCompleted,
	}
	if err := s.repo.SaveTransaction(ctx, userID, txn); err != nil {
		return nil, fmt.Errorf("save withdrawal transaction: %w", err)
	}

	s.mirror(ctx, "withdrawal transaction", func() error { return s.gateway.CreateTransaction(ctx, txn) })

	logger.Info("Deposit withdrawn",
		slog.String("deposit_id", depositID),
		slog.String("payout", txn.Amount.String()),
	)
	return deposit, nil
}

func (s *ledgerService) MarkNotificationRead(ctx context.Context, userID string, notificationID string) error {
	if userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return s.repo.MarkNotificationRead(ctx, userID, notificationID)
}

func (s *ledgerService) ListDeposits(ctx context.Context, userID string) ([]domain.Deposit, error) {
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.ListDeposits(ctx, userID)
}

func (s *ledgerService) ListLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.ListLoans(ctx, userID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.ListTransactions(ctx, userID)
}

func (s *ledgerService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	if userID == "" {
		return nil, apperrors.ErrNotAuthenticated
	}
	return s.repo.ListNotifications(ctx, userID)
}

func (s *ledgerService) TotalAccruedInterest(ctx context.Context, userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, apperrors.ErrNotAuthenticated
	}
	deposits, err := s.repo.ListDeposits(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range deposits {
		total = total.Add(d.AccruedInterest)
	}
	return total, nil
}

func (s *ledgerService) TotalActiveDepositAmount(ctx context.Context, userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, apperrors.ErrNotAuthenticated
	}
	deposits, err := s.repo.ListDeposits(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, d := range deposits {
		if d.Status == domain.DepositActive {
			total = total.Add(d.Amount)
		}
	}
	return total, nil
}

func (s *ledgerService) TotalActiveLoanAmount(ctx context.Context, userID string) (decimal.Decimal, error) {
	if userID == "" {
		return decimal.Zero, apperrors.ErrNotAuthenticated
	}
	loans, err := s.repo.ListLoans(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, l := range loans {
		if l.Status == domain.LoanActive {
			total = total.Add(l.Amount)
		}
	}
	return total, nil
}

// mirror runs a remote write best-effort when a gateway is configured.
func (s *ledgerService) mirror(ctx context.Context, what string, fn func() error) {
	if s.gateway == nil {
		return
	}
	if err := fn(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Remote mirror failed",
			slog.String("record", what),
			slog.String("error", err.Error()),
		)
		clearStaleCredentials(ctx, s.store, err)
	}
}

// MonthlyPayment estimates the monthly installment for a loan: the total
// repayable (principal plus simple interest pro-rated over the duration)
// divided by the number of 30-day months in the duration. A non-positive
// duration yields zero.
func MonthlyPayment(amount decimal.Decimal, durationDays int64) decimal.Decimal {
	if durationDays <= 0 {
		return decimal.Zero
	}
	days := decimal.NewFromInt(durationDays)
	totalRepayable := amount.Mul(decimal.NewFromInt(1).Add(loanAnnualRate.Mul(days).Div(decimal.NewFromInt(365))))
	months := days.Div(decimal.NewFromInt(30))
	return totalRepayable.Div(months)
}
