package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/authz"
	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/entities"
	"github.com/dapittriandi/simdor-service/internal/lifecycle"
	"github.com/dapittriandi/simdor-service/internal/services"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewOrderController(orderService services.OrderServiceInterface, logger *zap.Logger) *OrderController {
	return &OrderController{orderService: orderService, logger: logger}
}

func (ctrl *OrderController) CreateOrder(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	var payload dto.CreateOrderDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("format data order tidak valid"))
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err)
	}

	order, err := ctrl.orderService.CreateOrder(c.Request().Context(), actor, payload)
	if err != nil {
		ctrl.logger.Error("failed to create order", zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, order, "Order berhasil dibuat", http.StatusCreated)
}

func (ctrl *OrderController) GetOrders(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	filter := utils.ParseFilterFromQuery(c.QueryParams())
	orders, total, err := ctrl.orderService.GetOrders(c.Request().Context(), actor, filter)
	if err != nil {
		ctrl.logger.Error("failed to list orders", zap.Error(err))
		return utils.ErrorResponse(c, err)
	}

	items := make([]dto.OrderListItemDTO, 0, len(orders))
	for _, o := range orders {
		items = append(items, dto.OrderListItemDTO{
			ID:              o.ID,
			Portfolio:       o.Portfolio,
			Customer:        o.Customer,
			Status:          o.Status,
			StatusChangedAt: o.StatusChangedAt,
			NomorOrder:      o.NomorOrder,
			NamaKapal:       o.NamaKapal,
			CreatedAt:       o.CreatedAt,
		})
	}

	body := map[string]interface{}{
		"list":       items,
		"totalCount": total,
	}
	return utils.SuccessResponse(c, body, "Successfully", http.StatusOK)
}

func (ctrl *OrderController) FindOrder(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	order, err := ctrl.orderService.FindOrder(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	body := map[string]interface{}{
		"order":         order,
		"visibleFields": authz.VisibleFields(actor.Role, lifecycle.Status(order.Status)),
	}
	return utils.SuccessResponse(c, body, "Successfully", http.StatusOK)
}

// SubmitStage accepts a multipart form: a "data" part with the JSON field
// edits, plus optional file parts named after the document kinds (siSpk,
// sertifikat, sertifikatPM06, invoice, fakturPajak).
func (ctrl *OrderController) SubmitStage(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	orderID := c.Param("id")

	var payload dto.SubmitStageDTO
	if raw := c.FormValue("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return utils.ErrorResponse(c, apperrors.NewInvalidInputError("format data tahapan tidak valid"))
		}
	}

	var files []services.PendingFile
	for _, kind := range entities.AllDocumentKinds {
		fileHeader, err := c.FormFile(kind)
		if err != nil {
			continue
		}
		src, err := fileHeader.Open()
		if err != nil {
			return utils.ErrorResponse(c, apperrors.NewUploadError(kind, err))
		}
		defer src.Close()

		if err := utils.ValidateDocumentFile(fileHeader, src); err != nil {
			return utils.ErrorResponse(c, err)
		}
		files = append(files, services.PendingFile{
			Kind:     kind,
			FileName: fileHeader.Filename,
			Content:  src,
		})
	}

	order, err := ctrl.orderService.SubmitStage(c.Request().Context(), actor, orderID, payload, files)
	if err != nil {
		ctrl.logger.Error("stage submission rejected",
			zap.String("orderId", orderID), zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, order, "Tahapan berhasil diselesaikan", http.StatusOK)
}

// ValidateStage is the dry-run twin of SubmitStage for inline form
// validation. Pending browser-side files are announced by kind via the
// "pendingFiles" query parameter.
func (ctrl *OrderController) ValidateStage(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}
	orderID := c.Param("id")

	var payload dto.SubmitStageDTO
	if err := c.Bind(&payload); err != nil {
		return utils.ErrorResponse(c, apperrors.NewInvalidInputError("format data tahapan tidak valid"))
	}

	pendingKinds := c.QueryParams()["pendingFiles"]
	reasons, err := ctrl.orderService.ValidateStage(c.Request().Context(), actor, orderID, payload, pendingKinds)
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	body := map[string]interface{}{
		"complete": len(reasons) == 0,
		"reasons":  reasons,
	}
	return utils.SuccessResponse(c, body, "Successfully", http.StatusOK)
}

func (ctrl *OrderController) DeleteOrder(c echo.Context) error {
	actor, err := utils.GetActorFromCtx(c.Request().Context())
	if err != nil {
		return utils.ErrorResponse(c, err)
	}

	if err := ctrl.orderService.DeleteOrder(c.Request().Context(), actor, c.Param("id")); err != nil {
		ctrl.logger.Error("failed to delete order",
			zap.String("orderId", c.Param("id")), zap.Error(err))
		return utils.ErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Order berhasil dihapus", http.StatusOK)
}
