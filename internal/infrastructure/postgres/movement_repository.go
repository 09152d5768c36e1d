package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação de MovimentacaoRepository sobre PostgreSQL.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste a movimentação e seus itens. Chamar dentro de transação
// para que cabeçalho e itens sejam gravados atomicamente.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	ctx := context.Background()
	query := `
		INSERT INTO movimentacoes (id, localizacao_id, tipo, operador_id, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, mov.ID, mov.LocalizacaoID, mov.Tipo, mov.OperadorID, mov.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	for _, item := range mov.Itens {
		itemQuery := `
			INSERT INTO itens_movimentacao (id, movimentacao_id, produto_id, quantidade)
			VALUES ($1, $2, $3, $4)`
		_, err := r.q.Exec(ctx, itemQuery, item.ID, item.MovimentacaoID, item.ProdutoID, item.Quantidade)
		if err != nil {
			return fmt.Errorf("insert item movimentacao: %w", err)
		}
	}
	return nil
}

// GetByID obtém uma movimentação com seus itens.
func (r *MovimentacaoRepo) GetByID(id string) (*entity.Movimentacao, error) {
	ctx := context.Background()
	query := `
		SELECT id, localizacao_id, tipo, operador_id, created_at
		FROM movimentacoes WHERE id = $1`
	var m entity.Movimentacao
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.LocalizacaoID, &m.Tipo, &m.OperadorID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}

	itemQuery := `
		SELECT id, movimentacao_id, produto_id, quantidade
		FROM itens_movimentacao WHERE movimentacao_id = $1`
	rows, err := r.q.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, fmt.Errorf("list itens movimentacao: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.ItemMovimentacao
		if err := rows.Scan(&item.ID, &item.MovimentacaoID, &item.ProdutoID, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("scan item movimentacao: %w", err)
		}
		m.Itens = append(m.Itens, item)
	}
	return &m, rows.Err()
}
