package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// EstoqueRepository define o porto para consultar/atualizar saldo por localização+produto.
// Usado dentro de transações para garantir consistência.
type EstoqueRepository interface {
	Get(produtoID, localizacaoID int64) (*entity.Estoque, error)
	ListByLocalizacao(localizacaoID int64) ([]*entity.Estoque, error)
	Upsert(estoque *entity.Estoque) error
	// GetForUpdate bloqueia a linha para update (SELECT FOR UPDATE).
	GetForUpdate(produtoID, localizacaoID int64) (*entity.Estoque, error)
}
