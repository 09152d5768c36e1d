package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.EstoqueRepository = (*EstoqueRepo)(nil)

// EstoqueRepo implementação de EstoqueRepository sobre PostgreSQL (usável com pool ou tx).
type EstoqueRepo struct {
	q Querier
}

// NewEstoqueRepository constrói o adaptador de estoque. Aceita pool ou tx (Querier).
func NewEstoqueRepository(q Querier) *EstoqueRepo {
	return &EstoqueRepo{q: q}
}

// Get obtém o saldo atual de um produto em uma localização.
// Linha inexistente devolve saldo zero, não erro.
func (r *EstoqueRepo) Get(produtoID, localizacaoID int64) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, localizacao_id, quantidade, updated_at
		FROM estoque WHERE produto_id = $1 AND localizacao_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, produtoID, localizacaoID),
		produtoID, localizacaoID, "get estoque")
}

// GetForUpdate obtém o saldo e bloqueia a linha (SELECT FOR UPDATE).
func (r *EstoqueRepo) GetForUpdate(produtoID, localizacaoID int64) (*entity.Estoque, error) {
	query := `
		SELECT produto_id, localizacao_id, quantidade, updated_at
		FROM estoque WHERE produto_id = $1 AND localizacao_id = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, produtoID, localizacaoID),
		produtoID, localizacaoID, "get estoque for update")
}

// ListByLocalizacao lista os saldos positivos de uma localização.
func (r *EstoqueRepo) ListByLocalizacao(localizacaoID int64) ([]*entity.Estoque, error) {
	query := `
		SELECT produto_id, localizacao_id, quantidade, updated_at
		FROM estoque WHERE localizacao_id = $1 AND quantidade > 0
		ORDER BY produto_id`
	rows, err := r.q.Query(context.Background(), query, localizacaoID)
	if err != nil {
		return nil, fmt.Errorf("list estoque: %w", err)
	}
	defer rows.Close()
	var list []*entity.Estoque
	for rows.Next() {
		var s entity.Estoque
		if err := rows.Scan(&s.ProdutoID, &s.LocalizacaoID, &s.Quantidade, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan estoque: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert insere ou atualiza o saldo (por produto e localização).
func (r *EstoqueRepo) Upsert(estoque *entity.Estoque) error {
	query := `
		INSERT INTO estoque (produto_id, localizacao_id, quantidade, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (produto_id, localizacao_id)
		DO UPDATE SET quantidade = EXCLUDED.quantidade, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, estoque.ProdutoID, estoque.LocalizacaoID, estoque.Quantidade)
	if err != nil {
		return fmt.Errorf("upsert estoque: %w", err)
	}
	return nil
}

func (r *EstoqueRepo) scanOne(row pgx.Row, produtoID, localizacaoID int64, op string) (*entity.Estoque, error) {
	var s entity.Estoque
	err := row.Scan(&s.ProdutoID, &s.LocalizacaoID, &s.Quantidade, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Estoque{ProdutoID: produtoID, LocalizacaoID: localizacaoID, Quantidade: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
