package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// summaryHandler serves the dashboard headline aggregates.
type summaryHandler struct {
	ledgerService  portssvc.LedgerSvcFacade
	sessionService portssvc.SessionSvcFacade
}

func registerSummaryRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade, sessionService portssvc.SessionSvcFacade) {
	h := &summaryHandler{ledgerService: ledgerService, sessionService: sessionService}
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns total accrued interest over all deposits, active deposit and loan totals, and the user's balance.
// @Tags summary
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	ctx := c.Request.Context()

	earnings, err := h.ledgerService.TotalAccruedInterest(ctx, userID)
	if err != nil {
		logger.Error("Failed to compute accrued interest total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}
	deposits, err := h.ledgerService.TotalActiveDepositAmount(ctx, userID)
	if err != nil {
		logger.Error("Failed to compute active deposit total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}
	loans, err := h.ledgerService.TotalActiveLoanAmount(ctx, userID)
	if err != nil {
		logger.Error("Failed to compute active loan total", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	// Balance comes from the session snapshot; a missing session still yields
	// the ledger figures.
	balance := decimal.Zero
	user, err := h.sessionService.Current(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotAuthenticated) {
		logger.Warn("Failed to load session for balance", slog.String("error", err.Error()))
	}
	if user != nil {
		balance = user.Balance
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		TotalAccruedInterest: earnings,
		TotalActiveDeposits:  deposits,
		TotalActiveLoans:     loans,
		Balance:              balance,
	})
}
