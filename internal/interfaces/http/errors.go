package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// writeError traduce un error de dominio a status + dto.ErrorResponse.
// Lo no clasificado se registra y sale como 500 INTERNAL sin detalles.
func writeError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
	}
	return c.Status(status).JSON(body)
}

func mapError(err error) (int, dto.ErrorResponse) {
	var (
		stockErr   *domain.InsufficientStockError
		productErr *domain.ProductError
		valErr     *domain.ValidationError
	)

	switch {
	case errors.As(err, &stockErr):
		return fiber.StatusBadRequest, dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente",
			Details: map[string]any{
				"insumoId":           stockErr.ItemID,
				"stockActual":        stockErr.Current,
				"cantidadSolicitada": stockErr.Requested,
			},
		}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"}

	case errors.As(err, &productErr):
		details := map[string]any{"productoId": productErr.ProductID}
		if productErr.Name != "" {
			details["nombre"] = productErr.Name
		}
		if errors.Is(productErr.Err, domain.ErrProductUnavailable) {
			return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PRODUCT_UNAVAILABLE", Message: productErr.Error(), Details: details}
		}
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: productErr.Error(), Details: details}
	case errors.Is(err, domain.ErrProductNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrProductUnavailable):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PRODUCT_UNAVAILABLE", Message: err.Error()}
	case errors.Is(err, domain.ErrEmptyCart):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "EMPTY_CART", Message: err.Error()}

	case errors.As(err, &valErr):
		resp := dto.ErrorResponse{Code: "VALIDATION", Message: valErr.Error()}
		if valErr.Field != "" {
			resp.Details = map[string]any{"campo": valErr.Field}
		}
		return fiber.StatusBadRequest, resp
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}

	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}
}

// FiberErrorHandler responde con dto.ErrorResponse los errores que escapan de los handlers (404 de ruta, panics recuperados).
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "HTTP_ERROR"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "ROUTE_NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}
