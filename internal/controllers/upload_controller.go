package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/pkg/filestorage"
)

// UploadController fronts the media host. Its delete endpoint speaks the
// exact wire shapes the dashboard's media widget expects, which differ from
// the envelope the rest of the API uses.
type UploadController struct {
	fileStorage filestorage.FileStorage
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorage, logger *zap.Logger) *UploadController {
	return &UploadController{fileStorage: fileStorage, logger: logger}
}

type deleteFileRequest struct {
	PublicID string `json:"publicId"`
}

// DeleteFile removes one stored file by its media-host handle.
//
//	200 {"result": "File successfully deleted"}
//	400 {"error": "publicId is required"}
//	500 {"error": "...", "details": "..."}
func (ctrl *UploadController) DeleteFile(c echo.Context) error {
	var payload deleteFileRequest
	if err := c.Bind(&payload); err != nil || payload.PublicID == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": "publicId is required",
		})
	}

	if err := ctrl.fileStorage.Delete(c.Request().Context(), payload.PublicID); err != nil {
		ctrl.logger.Error("failed to delete file",
			zap.String("publicId", payload.PublicID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "Failed to delete file",
			"details": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"result": "File successfully deleted",
	})
}
