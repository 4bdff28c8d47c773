package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/services"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
	logger           *zap.Logger
}

func NewDashboardController(dashboardService services.DashboardServiceInterface, logger *zap.Logger) *DashboardController {
	return &DashboardController{dashboardService: dashboardService, logger: logger}
}

func (ctrl *DashboardController) GetStats(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	stats, err := ctrl.dashboardService.GetStats(c.Request().Context(), actor)
	if err != nil {
		ctrl.logger.Error("failed to load dashboard stats", zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, stats, "Successfully", http.StatusOK)
}
