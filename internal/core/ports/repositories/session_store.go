package repositories

import (
	"context"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// SessionStore persists the active user record and token across restarts.
// These two values are the only durable state in the system; the ledger
// collections themselves are rebuilt from seeds on restore.
type SessionStore interface {
	SaveSnapshot(ctx context.Context, user domain.User, token string) error
	// LoadSnapshot returns apperrors.ErrNotFound when no snapshot is stored.
	LoadSnapshot(ctx context.Context) (*domain.User, string, error)
	ClearSnapshot(ctx context.Context) error
}
