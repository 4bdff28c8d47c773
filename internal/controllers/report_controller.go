package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/services"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

func reportFilterFromQuery(c echo.Context) dto.ReportFilterDTO {
	return dto.ReportFilterDTO{
		Portfolio: c.QueryParam("portfolio"),
		Status:    c.QueryParam("status"),
		DateFrom:  c.QueryParam("dateFrom"),
		DateTo:    c.QueryParam("dateTo"),
	}
}

func (ctrl *ReportController) GetReport(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	items, err := ctrl.reportService.GetReport(c.Request().Context(), actor, reportFilterFromQuery(c))
	if err != nil {
		ctrl.logger.Error("failed to build report", zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, items, "Successfully", http.StatusOK)
}

// ExportReport streams the report as an .xlsx attachment.
func (ctrl *ReportController) ExportReport(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	f, err := ctrl.reportService.ExportReport(c.Request().Context(), actor, reportFilterFromQuery(c))
	if err != nil {
		ctrl.logger.Error("failed to export report", zap.Error(err))
		return utils.ErrorResponse(c, err)
	}

	fileName := fmt.Sprintf("laporan-order-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)

	return f.Write(c.Response())
}
