package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/dapittriandi/simdor-service/internal/controllers"
)

func runAuthRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.AuthController) {
	public.POST("/auth/login", ctrl.Login)
	public.POST("/auth/refresh", ctrl.Refresh)
	secure.POST("/auth/logout", ctrl.Logout)
}
