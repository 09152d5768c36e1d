package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

var _ repository.LocalizacaoRepository = (*LocalizacaoRepo)(nil)

// LocalizacaoRepo implementação do porto LocalizacaoRepository sobre PostgreSQL.
type LocalizacaoRepo struct {
	q Querier
}

// NewLocalizacaoRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewLocalizacaoRepository(q Querier) *LocalizacaoRepo {
	return &LocalizacaoRepo{q: q}
}

const localizacaoColunas = `
	l.id, l.ean, z.nome || ' - ' || z.armazem AS nome, l.zona_id,
	COALESCE(l.aberta_por::text, ''), l.aberta_em, l.created_at, l.updated_at`

// GetByID obtém uma localização por ID.
func (r *LocalizacaoRepo) GetByID(id int64) (*entity.Localizacao, error) {
	query := `
		SELECT ` + localizacaoColunas + `
		FROM localizacoes l JOIN zonas z ON z.id = l.zona_id
		WHERE l.id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get localizacao")
}

// GetByEAN obtém uma localização pelo código de barras.
func (r *LocalizacaoRepo) GetByEAN(ean string) (*entity.Localizacao, error) {
	query := `
		SELECT ` + localizacaoColunas + `
		FROM localizacoes l JOIN zonas z ON z.id = l.zona_id
		WHERE l.ean = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, ean), "get localizacao por ean")
}

// Abrir grava o lock da localização para o operador.
func (r *LocalizacaoRepo) Abrir(id int64, operadorID string) error {
	query := `
		UPDATE localizacoes SET aberta_por = $2, aberta_em = now(), updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, operadorID)
	if err != nil {
		return fmt.Errorf("abrir localizacao: %w", err)
	}
	return nil
}

// Fechar libera o lock da localização (idempotente).
func (r *LocalizacaoRepo) Fechar(id int64) error {
	query := `
		UPDATE localizacoes SET aberta_por = NULL, aberta_em = NULL, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("fechar localizacao: %w", err)
	}
	return nil
}

func (r *LocalizacaoRepo) scanOne(row pgx.Row, op string) (*entity.Localizacao, error) {
	var l entity.Localizacao
	err := row.Scan(
		&l.ID, &l.EAN, &l.Nome, &l.ZonaID,
		&l.AbertaPor, &l.AbertaEm, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &l, nil
}
