package services

import (
	"context"
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
)

// AuthSvcFacade authenticates users against the remote gateway with a local
// mock fallback. On success the session is activated (snapshot persisted,
// ledger reseeded) and an access token for this API is returned. Failures of
// both paths surface as apperrors.ErrUnauthorized with no further detail.
type AuthSvcFacade interface {
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, string, error)
	Logout(ctx context.Context) error
}

// SessionSvcFacade tracks the active identity. Changing the identity clears
// the previous session's ledger collections and reseeds the new one.
type SessionSvcFacade interface {
	Activate(ctx context.Context, user domain.User, token string) error
	Deactivate(ctx context.Context) error
	// Current returns apperrors.ErrNotAuthenticated when no user is active.
	Current(ctx context.Context) (*domain.User, error)
	// Restore reloads the persisted snapshot at startup and reseeds the
	// ledger for the restored identity, if any.
	Restore(ctx context.Context) error
}

// TokenSvcFacade issues access tokens for this API's own HTTP surface.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// UserSvcFacade exposes the user directory for the admin dashboard. It
// proxies the remote gateway when one is configured and falls back to the
// local directory otherwise.
type UserSvcFacade interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
}
