package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// OperadorRepository define o porto de persistência para Operador.
type OperadorRepository interface {
	GetByID(id string) (*entity.Operador, error)
}
