package services

import (
	"context"
	"log/slog"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/middleware"
)

// userService lists users for the admin dashboard, preferring the remote
// gateway and falling back to the local directory when it is unreachable.
type userService struct {
	gateway   portsrepo.RemoteGateway // nil when no gateway is configured
	directory portsrepo.UserDirectory
	store     portsrepo.SessionStore // for credential invalidation on gateway 401
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates the user service. gateway may be nil.
func NewUserService(gateway portsrepo.RemoteGateway, directory portsrepo.UserDirectory, store portsrepo.SessionStore) portssvc.UserSvcFacade {
	return &userService{gateway: gateway, directory: directory, store: store}
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if s.gateway != nil {
		users, err := s.gateway.ListUsers(ctx)
		if err == nil {
			return users, nil
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Remote user listing failed, falling back to local directory", slog.String("error", err.Error()))
		clearStaleCredentials(ctx, s.store, err)
	}
	return s.directory.ListUsers(ctx)
}
