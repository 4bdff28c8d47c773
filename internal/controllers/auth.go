package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/services"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("format data login tidak valid"))
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err)
	}

	res, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("login rejected", zap.String("email", payload.Email), zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, res, "Login berhasil", http.StatusOK)
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	var payload dto.RefreshDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("format data refresh tidak valid"))
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err)
	}

	pair, err := ctrl.authService.Refresh(c.Request().Context(), payload.RefreshToken)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, pair, "Token berhasil diperbarui", http.StatusOK)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	if err := ctrl.authService.Logout(c.Request().Context(), actor.ID); err != nil {
		ctrl.logger.Error("logout failed", zap.String("userId", actor.ID), zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Logout berhasil", http.StatusOK)
}
