package handlers

import (
	"net/http"

	portssvc "github.com/financeflow/financeflow_backend/internal/core/ports/services"
	"github.com/financeflow/financeflow_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// planHandler serves the fixed deposit plan catalog.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := &planHandler{planService: planService}
	rg.GET("/plans", h.listPlans)
}

// listPlans godoc
// @Summary List deposit plans
// @Description Returns the three fixed investment plans in catalog order.
// @Tags plans
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Security BearerAuth
// @Router /plans [get]
func (h *planHandler) listPlans(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToPlanResponses(h.planService.ListPlans()))
}
