package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/dapittriandi/simdor-service/internal/controllers"
)

func runOrderRouter(secure *echo.Group, ctrl *controllers.OrderController) {
	orders := secure.Group("/orders")

	orders.GET("", ctrl.GetOrders)
	orders.POST("", ctrl.CreateOrder)
	orders.GET("/:id", ctrl.FindOrder)
	orders.DELETE("/:id", ctrl.DeleteOrder)

	// Stage workflow
	orders.POST("/:id/submit-stage", ctrl.SubmitStage)
	orders.POST("/:id/validate-stage", ctrl.ValidateStage)
}
