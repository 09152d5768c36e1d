package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/application/inventory"
	"github.com/armazemdigital/wms/internal/domain"
)

// OcorrenciaHandler trata o registro de divergências de contagem (protegido).
type OcorrenciaHandler struct {
	uc *inventory.OcorrenciaUseCase
}

// NewOcorrenciaHandler constrói o handler.
func NewOcorrenciaHandler(uc *inventory.OcorrenciaUseCase) *OcorrenciaHandler {
	return &OcorrenciaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar ocorrência de divergência
// @Tags         ocorrencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarOcorrenciaRequest  true  "localizacao_id, produto_id, qtde_esperada (positiva), qtde_contada"
// @Success      201   {object}  dto.OcorrenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ocorrencias [post]
func (h *OcorrenciaHandler) Registrar(c *fiber.Ctx) error {
	operadorID := GetOperadorID(c)
	if operadorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegistrarOcorrenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	oc, err := h.uc.Registrar(operadorID, in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade esperada deve ser positiva"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto ou localização não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OcorrenciaResponse{
		ID:        oc.ID,
		CreatedAt: oc.CreatedAt.Format(time.RFC3339),
	})
}
