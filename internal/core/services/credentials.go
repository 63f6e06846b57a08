package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_backend/internal/middleware"
)

// clearStaleCredentials wipes the persisted session snapshot after a
// 401-class gateway response: the stored token no longer authenticates and
// replaying it would keep failing. Any other gateway error leaves the
// snapshot alone. store may be nil in tests.
func clearStaleCredentials(ctx context.Context, store portsrepo.SessionStore, err error) {
	if store == nil || !errors.Is(err, apperrors.ErrUnauthorized) {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)
	if clearErr := store.ClearSnapshot(ctx); clearErr != nil {
		logger.Error("Failed to clear credentials after gateway 401", slog.String("error", clearErr.Error()))
		return
	}
	logger.Info("Cleared persisted credentials after gateway 401")
}
