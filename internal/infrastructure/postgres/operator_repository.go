package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.OperadorRepository = (*OperadorRepo)(nil)

// OperadorRepo implementação de OperadorRepository sobre PostgreSQL.
type OperadorRepo struct {
	q Querier
}

// NewOperadorRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewOperadorRepository(q Querier) *OperadorRepo {
	return &OperadorRepo{q: q}
}

// GetByID obtém um operador por ID.
func (r *OperadorRepo) GetByID(id string) (*entity.Operador, error) {
	query := `
		SELECT id, nome, role, created_at
		FROM operadores WHERE id = $1`
	var op entity.Operador
	err := r.q.QueryRow(context.Background(), query, id).Scan(&op.ID, &op.Nome, &op.Role, &op.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operador: %w", err)
	}
	return &op, nil
}
