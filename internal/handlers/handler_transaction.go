package handlers

import (
	"net/http"

	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the append-only transaction audit trail.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &transactionHandler{ledgerService: ledgerService}
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the session's transactions in append order, which equals operation invocation order.
// @Tags transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}
