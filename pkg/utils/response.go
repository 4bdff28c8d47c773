package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Reasons []string    `json:"reasons,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse maps the application error taxonomy onto HTTP statuses.
// Validation reasons travel as a list so the UI can show every problem at
// once.
func ErrorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := err.Error()
	var reasons []string

	var httpErr *apperrors.HttpError
	var validationErr *apperrors.ValidationError
	var uploadErr *apperrors.UploadError
	var inputErr *apperrors.InvalidInputError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErr):
		code = http.StatusUnprocessableEntity
		message = "validation failed"
		reasons = validationErr.Reasons
	case errors.As(err, &uploadErr):
		code = http.StatusBadGateway
		message = uploadErr.Error()
	case errors.As(err, &inputErr):
		code = http.StatusBadRequest
		message = inputErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, apperrors.ErrAlreadyTerminal):
		code = http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrTokenIsNotRefresh):
		code = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
		Reasons: reasons,
	})
}
