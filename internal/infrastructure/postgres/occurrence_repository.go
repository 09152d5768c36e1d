package postgres

import (
	"context"
	"fmt"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.OcorrenciaRepository = (*OcorrenciaRepo)(nil)

// OcorrenciaRepo implementação de OcorrenciaRepository sobre PostgreSQL.
type OcorrenciaRepo struct {
	q Querier
}

// NewOcorrenciaRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewOcorrenciaRepository(q Querier) *OcorrenciaRepo {
	return &OcorrenciaRepo{q: q}
}

// Create persiste uma ocorrência de divergência.
func (r *OcorrenciaRepo) Create(oc *entity.Ocorrencia) error {
	query := `
		INSERT INTO ocorrencias
			(id, localizacao_id, produto_id, qtde_esperada, qtde_contada, observacao, operador_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		oc.ID, oc.LocalizacaoID, oc.ProdutoID, oc.QtdeEsperada, oc.QtdeContada,
		oc.Observacao, oc.OperadorID, oc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ocorrencia: %w", err)
	}
	return nil
}
