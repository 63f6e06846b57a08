package handlers

import (
	"errors"
	"net/http"

	"github.com/financeflow/financeflow_backend/internal/apperrors"
	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/financeflow/financeflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func registerNotificationRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := &notificationHandler{ledgerService: ledgerService}

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Returns the session's notifications in append order.
// @Tags notifications
// @Produce json
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	notifications, err := h.ledgerService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// markRead godoc
// @Summary Mark a notification read
// @Description One-way transition from unread to read.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.ledgerService.MarkNotificationRead(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to mark notification read"})
		return
	}
	c.Status(http.StatusNoContent)
}
