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
)

// depositHandler handles HTTP requests related to deposits.
type depositHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerDepositRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &depositHandler{ledgerService: ledgerService}

	deposits := rg.Group("/deposits")
	{
		deposits.GET("", h.listDeposits)
		deposits.POST("", h.createDeposit)
		deposits.POST("/:id/withdraw", h.withdrawDeposit)
	}
}

// listDeposits godoc
// @Summary List deposits
// @Description Returns the session's deposits in append order.
// @Tags deposits
// @Produce json
// @Success 200 {array} dto.DepositResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deposits, err := h.ledgerService.ListDeposits(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list deposits"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDepositResponses(deposits))
}

// createDeposit godoc
// @Summary Create a time-deposit
// @Description Creates an active deposit from a plan and appends the matching transaction and notification.
// @Tags deposits
// @Accept json
// @Produce json
// @Param deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.ledgerService.CreateDeposit(c.Request.Context(), userID, req.Amount, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidPlan):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Deposit plan not found"})
		case errors.Is(err, apperrors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		default:
			logger.Error("Failed to create deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create deposit"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// withdrawDeposit godoc
// @Summary Withdraw a deposit
// @Description Marks the deposit withdrawn and appends a withdrawal transaction for amount plus accrued interest.
// @Tags deposits
// @Produce json
// @Param id path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /deposits/{id}/withdraw [post]
func (h *depositHandler) withdrawDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deposit, err := h.ledgerService.WithdrawDeposit(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Deposit not found"})
		case errors.Is(err, apperrors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		default:
			logger.Error("Failed to withdraw deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to withdraw deposit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}
