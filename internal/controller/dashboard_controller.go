package controller

import (
	"vendor_risk_backend/internal/service"
	"vendor_risk_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// GetOverview godoc
// @Summary Dashboard overview
// @Description Vendor and assessment counts, risk distribution and recent activity for the caller's company
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Overview} "Success"
// @Router /api/dashboard/overview [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.DashboardService.GetOverview(ctx.Request.Context(), claims.CompanyID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
