package services

import (
	"context"
	"errors"
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

// fallbackPassword is the only password the local directory accepts.
const fallbackPassword = "password123"

// authService authenticates in two explicit steps: attempt the remote
// gateway, inspect the typed outcome, and dispatch to the local fallback
// when the remote path did not produce a user. The caller never sees a
// gateway failure; both paths failing surfaces as a bare unauthorized.
type authService struct {
	gateway   portsrepo.RemoteGateway // nil when no gateway is configured
	directory portsrepo.UserDirectory
	session   portssvc.SessionSvcFacade
	tokens    portssvc.TokenSvcFacade
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// NewAuthService creates the auth service. gateway may be nil, which skips
// the remote step entirely.
func NewAuthService(gateway portsrepo.RemoteGateway, directory portsrepo.UserDirectory, session portssvc.SessionSvcFacade, tokens portssvc.TokenSvcFacade) portssvc.AuthSvcFacade {
	return &authService{gateway: gateway, directory: directory, session: session, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.gateway != nil {
		user, remoteToken, err := s.gateway.Login(ctx, email, password)
		if err == nil {
			return s.establish(ctx, *user, remoteToken)
		}
		logger.Warn("Remote login failed, falling back to local directory", slog.String("error", err.Error()))
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to read local user directory", slog.String("error", err.Error()))
		}
		return nil, "", apperrors.ErrUnauthorized
	}
	if password != fallbackPassword {
		return nil, "", apperrors.ErrUnauthorized
	}

	return s.establish(ctx, *user, "")
}

// Register creates the user remotely when possible; the local fallback
// always succeeds and fabricates the user in the directory.
func (s *authService) Register(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if s.gateway != nil {
		user, err := s.gateway.Register(ctx, portsrepo.RegisterParams{
			Name:     name,
			Email:    email,
			Password: password,
			Role:     role,
		})
		if err == nil {
			return s.establish(ctx, *user, "")
		}
		logger.Warn("Remote registration failed, falling back to local directory", slog.String("error", err.Error()))
	}

	balance := decimal.Zero
	if role == domain.RoleDepositor {
		balance = decimal.NewFromInt(10000)
	}
	user := domain.User{
		UserID:    uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		Balance:   balance,
		CreatedAt: time.Now(),
	}
	if err := s.directory.Add(ctx, user); err != nil {
		logger.Error("Failed to add fallback user to directory", slog.String("error", err.Error()))
		return nil, "", apperrors.ErrUnauthorized
	}

	return s.establish(ctx, user, "")
}

func (s *authService) Logout(ctx context.Context) error {
	return s.session.Deactivate(ctx)
}

// establish issues an access token and activates the session. The persisted
// token is the remote pseudo-token when the remote path produced one,
// otherwise our own access token.
func (s *authService) establish(ctx context.Context, user domain.User, remoteToken string) (*domain.User, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accessToken, _, err := s.tokens.GenerateAccessToken(ctx, &user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		return nil, "", err
	}

	persisted := remoteToken
	if persisted == "" {
		persisted = accessToken
	}
	if err := s.session.Activate(ctx, user, persisted); err != nil {
		return nil, "", err
	}
	return &user, accessToken, nil
}
