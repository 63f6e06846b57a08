package repositories

import (
	"context"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// RegisterParams is the payload sent to the remote gateway when creating a
// user. The password travels in plaintext; that is the sandbox contract.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     domain.UserRole
}

// RemoteGateway is the driven port for the external CRUD API. Every method
// returns an error wrapping apperrors.ErrRemoteUnavailable on network, HTTP
// or parse failure, and apperrors.ErrUnauthorized on a 401-class response so
// the session layer can clear stored credentials.
type RemoteGateway interface {
	Register(ctx context.Context, params RegisterParams) (*domain.User, error)
	// Login lists remote users and matches email plus plaintext password,
	// returning the matched user and a bearer pseudo-token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	ListUsers(ctx context.Context) ([]domain.User, error)

	// Best-effort mirrors of locally created records.
	CreateDeposit(ctx context.Context, deposit domain.Deposit) error
	CreateLoan(ctx context.Context, loan domain.Loan) error
	CreateTransaction(ctx context.Context, txn domain.Transaction) error
}
