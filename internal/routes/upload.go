package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/dapittriandi/simdor-service/internal/controllers"
)

func runUploadRouter(secure *echo.Group, ctrl *controllers.UploadController) {
	secure.POST("/delete-file", ctrl.DeleteFile)
}
