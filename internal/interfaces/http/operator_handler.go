package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/application/inventory"
)

// OperadorHandler trata a consulta do operador autenticado (protegido).
type OperadorHandler struct {
	uc *inventory.OperadorUseCase
}

// NewOperadorHandler constrói o handler.
func NewOperadorHandler(uc *inventory.OperadorUseCase) *OperadorHandler {
	return &OperadorHandler{uc: uc}
}

// Atual godoc
// @Summary      Operador do token atual
// @Tags         operadores
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OperadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/operadores/atual [get]
func (h *OperadorHandler) Atual(c *fiber.Ctx) error {
	operadorID := GetOperadorID(c)
	if operadorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	out, err := h.uc.Atual(operadorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "operador não encontrado"})
	}
	return c.JSON(out)
}
