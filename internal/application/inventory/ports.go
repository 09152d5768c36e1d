package inventory

import (
	"context"

	"github.com/armazemdigital/wms/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando repositórios
// atados a essa tx. Garante atomicidade para o registro de movimentações.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
	) error) error
}
