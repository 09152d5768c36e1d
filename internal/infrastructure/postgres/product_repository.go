package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	query := `
		SELECT id, sku, ean, descricao, COALESCE(foto_url, ''), created_at, updated_at
		FROM produtos WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get produto")
}

// GetByEAN obtém um produto pelo código de barras.
func (r *ProdutoRepo) GetByEAN(ean string) (*entity.Produto, error) {
	query := `
		SELECT id, sku, ean, descricao, COALESCE(foto_url, ''), created_at, updated_at
		FROM produtos WHERE ean = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ean), "get produto por ean")
}

func (r *ProdutoRepo) scanOne(row pgx.Row, op string) (*entity.Produto, error) {
	var p entity.Produto
	err := row.Scan(&p.ID, &p.SKU, &p.EAN, &p.Descricao, &p.FotoURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
