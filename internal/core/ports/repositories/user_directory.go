package repositories

import (
	"context"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// UserDirectory is the local credential directory used when the remote
// gateway is unreachable. It holds the fixed seed users plus any users
// fabricated by fallback registration.
type UserDirectory interface {
	// FindByEmail returns apperrors.ErrNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Add(ctx context.Context, user domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}
