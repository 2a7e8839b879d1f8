package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dronify/warehouse-api/internal/application/dto"
	"github.com/dronify/warehouse-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP. Los errores de
// negocio llegan con el estado intacto; ErrContention es el único que el
// cliente puede reintentar tal cual.
func respondError(c *fiber.Ctx, err error) error {
	type mapping struct {
		target error
		status int
		code   string
	}
	mappings := []mapping{
		{domain.ErrInvalidQuantity, fiber.StatusBadRequest, "INVALID_QUANTITY"},
		{domain.ErrInvalidAction, fiber.StatusBadRequest, "INVALID_ACTION"},
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrItemNotFound, fiber.StatusNotFound, "ITEM_NOT_FOUND"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{domain.ErrContention, fiber.StatusLocked, "CONTENTION"},
	}
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: m.target.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
