package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/application/inventory"
)

// ProdutoHandler trata as requisições HTTP de produtos (protegido).
type ProdutoHandler struct {
	uc *inventory.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *inventory.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// GetByEAN godoc
// @Summary      Consultar produto por código de barras
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        ean  path  string  true  "EAN do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/codigo/{ean} [get]
func (h *ProdutoHandler) GetByEAN(c *fiber.Ctx) error {
	ean := c.Params("ean")
	if ean == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EAN", Message: "ean é requerido"})
	}
	out, err := h.uc.GetByEAN(ean)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}
