package handlers

import (
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/financeflow/financeflow_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies
// using the service facade interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes (rate limited)
	registerAuthRoutes(r, cfg, services)

	// Authenticated API v1 routes
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSessionRoutes(v1, services.Auth)
	registerPlanRoutes(v1, services.Plan)
	registerDepositRoutes(v1, services.Ledger)
	registerLoanRoutes(v1, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger)
	registerNotificationRoutes(v1, services.Ledger)
	registerSummaryRoutes(v1, services.Ledger, services.Session)
	registerUserRoutes(v1, services.User, services.Session)
}
