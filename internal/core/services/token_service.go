package services

import (
	"context"
	"time"

	"github.com/financeflow/financeflow_backend/internal/core/domain"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/platform/config"
	"github.com/financeflow/financeflow_backend/internal/utils"
)

// tokenService issues JWT access tokens for this API's own HTTP surface.
type tokenService struct {
	cfg *config.Config
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
