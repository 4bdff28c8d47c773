package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/dapittriandi/simdor-service/internal/controllers"
)

func runReportRouter(secure *echo.Group, ctrl *controllers.ReportController) {
	secure.GET("/reports/orders", ctrl.GetReport)
	secure.GET("/reports/orders/export", ctrl.ExportReport)
}
