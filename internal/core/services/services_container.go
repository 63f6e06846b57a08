package services

import (
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. gateway may be nil when no remote CRUD API is
// configured; every consumer degrades to local state in that case.
func NewServiceContainer(
	cfg *config.Config,
	ledgerRepo portsrepo.LedgerRepository,
	sessionStore portsrepo.SessionStore,
	directory portsrepo.UserDirectory,
	gateway portsrepo.RemoteGateway,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Plan = NewPlanService()
	container.Ledger = NewLedgerService(ledgerRepo, container.Plan, gateway, sessionStore)
	container.Session = NewSessionService(sessionStore, container.Ledger)
	container.Token = NewTokenService(cfg)
	container.Auth = NewAuthService(gateway, directory, container.Session, container.Token)
	container.User = NewUserService(gateway, directory, sessionStore)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.PlanSvcFacade    = (*planService)(nil)
	_ portssvc.LedgerSvcFacade  = (*ledgerService)(nil)
	_ portssvc.SessionSvcFacade = (*sessionService)(nil)
	_ portssvc.AuthSvcFacade    = (*authService)(nil)
	_ portssvc.UserSvcFacade    = (*userService)(nil)
)
