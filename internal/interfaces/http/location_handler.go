package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/application/inventory"
	"github.com/armazemdigital/wms/internal/domain"
)

// LocalizacaoHandler trata as requisições HTTP de localizações (protegido).
type LocalizacaoHandler struct {
	uc *inventory.LocalizacaoUseCase
}

// NewLocalizacaoHandler constrói o handler.
func NewLocalizacaoHandler(uc *inventory.LocalizacaoUseCase) *LocalizacaoHandler {
	return &LocalizacaoHandler{uc: uc}
}

// GetByEAN godoc
// @Summary      Consultar localização por código de barras
// @Tags         localizacoes
// @Security     Bearer
// @Produce      json
// @Param        ean  path  string  true  "EAN da localização"
// @Success      200  {object}  dto.LocalizacaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/localizacoes/codigo/{ean} [get]
func (h *LocalizacaoHandler) GetByEAN(c *fiber.Ctx) error {
	ean := c.Params("ean")
	if ean == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EAN", Message: "ean é requerido"})
	}
	out, err := h.uc.GetByEAN(ean)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "localização não encontrada"})
	}
	return c.JSON(out)
}

// Abrir godoc
// @Summary      Abrir (travar) localização para movimentação
// @Tags         localizacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da localização"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/localizacoes/{id}/abrir [post]
func (h *LocalizacaoHandler) Abrir(c *fiber.Ctx) error {
	operadorID := GetOperadorID(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Abrir(int64(id), operadorID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "localização não encontrada"})
		}
		if errors.Is(err, domain.ErrLockConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOCK_CONFLICT", Message: "localização aberta por outro operador"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "localização aberta"})
}

// Fechar godoc
// @Summary      Fechar (liberar) localização
// @Tags         localizacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da localização"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/localizacoes/{id}/fechar [post]
func (h *LocalizacaoHandler) Fechar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Fechar(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "localização não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "localização fechada"})
}

// Estoque godoc
// @Summary      Listar saldos da localização
// @Tags         localizacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da localização"
// @Success      200  {array}   dto.EstoqueItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/localizacoes/{id}/estoque [get]
func (h *LocalizacaoHandler) Estoque(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	items, err := h.uc.EstoquePorLocalizacao(int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "localização não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}
