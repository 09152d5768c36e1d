package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// MovimentacaoRepository define o porto de persistência para Movimentacao e seus itens.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	GetByID(id string) (*entity.Movimentacao, error)
}
