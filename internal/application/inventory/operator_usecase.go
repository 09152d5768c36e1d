package inventory

import (
	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

// OperadorUseCase consulta o operador autenticado.
type OperadorUseCase struct {
	operadorRepo repository.OperadorRepository
}

// NewOperadorUseCase constrói o caso de uso.
func NewOperadorUseCase(operadorRepo repository.OperadorRepository) *OperadorUseCase {
	return &OperadorUseCase{operadorRepo: operadorRepo}
}

// Atual devolve os dados do operador do token.
func (uc *OperadorUseCase) Atual(operadorID string) (*dto.OperadorResponse, error) {
	op, err := uc.operadorRepo.GetByID(operadorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}
	return &dto.OperadorResponse{ID: op.ID, Nome: op.Nome, Role: op.Role}, nil
}
