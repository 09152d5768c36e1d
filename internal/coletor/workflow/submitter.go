package workflow

import (
	"context"

	"github.com/armazemdigital/wms/internal/domain"
)

// Submitter monta e envia a movimentação acumulada. Não altera estado local;
// o controlador decide o que fazer com o resultado.
type Submitter struct {
	service InventoryService
}

func NewSubmitter(service InventoryService) *Submitter {
	return &Submitter{service: service}
}

// Submit envia as linhas agrupadas da sessão corrente. Lote vazio não chega
// ao serviço: devolve domain.ErrValidation direto.
func (s *Submitter) Submit(ctx context.Context, sessao LocationSession, operacao, operadorID string, linhas []GroupedLine) (*Recibo, error) {
	if len(linhas) == 0 {
		return nil, domain.ErrValidation
	}
	return s.service.RegistrarMovimentacao(ctx, Movimentacao{
		LocalizacaoID: sessao.LocalizacaoID,
		Tipo:          operacao,
		OperadorID:    operadorID,
		Linhas:        linhas,
	})
}
