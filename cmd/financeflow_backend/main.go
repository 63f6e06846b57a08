package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/financeflow/financeflow_backend/internal/adapters/gateway"
	"github.com/financeflow/financeflow_backend/internal/adapters/memory"
	"github.com/financeflow/financeflow_backend/internal/adapters/sqlitestore"
	portsrepo "github.com/financeflow/financeflow_backend/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_backend/internal/core/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/financeflow/financeflow_backend/internal/handlers"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/financeflow/financeflow_backend/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Session snapshot store (the only persisted state)
	sessionStore, err := sqlitestore.NewSessionStore(cfg.SessionDBPath)
	if err != nil {
		logger.Error("Failed to open session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer sessionStore.Close()

	// Remote CRUD gateway, optional
	var remote portsrepo.RemoteGateway
	if cfg.GatewayBaseURL != "" {
		remote = gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayTimeout, sessionStore.Token)
		logger.Info("Remote gateway enabled", slog.String("base_url", cfg.GatewayBaseURL))
	}

	ledgerRepo := memory.NewLedgerRepository()
	directory := memory.NewUserDirectory()

	serviceContainer := services.NewServiceContainer(cfg, ledgerRepo, sessionStore, directory, remote)

	// Restore a persisted identity; the ledger collections are memory-only,
	// so the restored user is reseeded from scratch.
	if err := serviceContainer.Session.Restore(context.Background()); err != nil {
		logger.Warn("Failed to restore persisted session", slog.String("error", err.Error()))
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
