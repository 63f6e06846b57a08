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

// loanHandler handles HTTP requests related to loans.
type loanHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerLoanRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &loanHandler{ledgerService: ledgerService}

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
	}
}

// listLoans godoc
// @Summary List loans
// @Description Returns the session's loans in append order.
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	loans, err := h.ledgerService.ListLoans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list loans"})
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// createLoan godoc
// @Summary Apply for a loan
// @Description Creates a pending loan application with the fixed 18% annual rate and a 30-day-month payment estimate.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan application"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.ledgerService.CreateLoan(c.Request.Context(), userID, req.Amount, req.DurationDays, req.Purpose)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid loan application: " + err.Error()})
		default:
			logger.Error("Failed to create loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create loan"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}
