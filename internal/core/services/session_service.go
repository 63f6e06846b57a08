package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/middleware"
)

// sessionService tracks the active identity. Changing identity wipes the
// previous session's ledger collections and seeds the new one; the snapshot
// (user record plus token) is the only state that survives a restart, the
// ledger itself is rebuilt from seeds on restore.
type sessionService struct {
	store  portsrepo.SessionStore
	ledger portssvc.LedgerSvcFacade

	mu      sync.Mutex
	current *domain.User
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// NewSessionService creates the session service.
func NewSessionService(store portsrepo.SessionStore, ledger portssvc.LedgerSvcFacade) portssvc.SessionSvcFacade {
	return &sessionService{store: store, ledger: ledger}
}

func (s *sessionService) Activate(ctx context.Context, user domain.User, token string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	previous := s.current
	s.current = &user
	s.mu.Unlock()

	if previous != nil && previous.UserID != user.UserID {
		if err := s.ledger.ClearForUser(ctx, previous.UserID); err != nil {
			return fmt.Errorf("clear previous session: %w", err)
		}
	}

	if err := s.store.SaveSnapshot(ctx, user, token); err != nil {
		return fmt.Errorf("persist session snapshot: %w", err)
	}
	if err := s.ledger.ReseedForUser(ctx, user); err != nil {
		return err
	}

	logger.Info("Session activated", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return nil
}

func (s *sessionService) Deactivate(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	previous := s.current
	s.current = nil
	s.mu.Unlock()

	if previous != nil {
		if err := s.ledger.ClearForUser(ctx, previous.UserID); err != nil {
			return fmt.Errorf("clear session ledger: %w", err)
		}
	}
	if err := s.store.ClearSnapshot(ctx); err != nil {
		return fmt.Errorf("clear session snapshot: %w", err)
	}

	logger.Info("Session deactivated")
	return nil
}

func (s *sessionService) Current(ctx context.Context) (*domain.User, error) {
	s.mu.Lock()
	if s.current != nil {
		user := *s.current
		s.mu.Unlock()
		return &user, nil
	}
	s.mu.Unlock()

	// Not in memory; a valid snapshot means the identity survived a restart.
	user, _, err := s.store.LoadSnapshot(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	// The ledger collections died with the previous process; rebuild them for
	// the restored identity so it does not see empty dashboards.
	if err := s.ledger.ReseedForUser(ctx, *user); err != nil {
		return nil, err
	}
	u := *user
	return &u, nil
}

// Restore reloads the persisted snapshot at startup. The ledger collections
// are not persisted, so the restored identity is reseeded from scratch.
func (s *sessionService) Restore(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, _, err := s.store.LoadSnapshot(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()

	if err := s.ledger.ReseedForUser(ctx, *user); err != nil {
		return err
	}

	logger.Info("Session restored from snapshot", slog.String("user_id", user.UserID))
	return nil
}
