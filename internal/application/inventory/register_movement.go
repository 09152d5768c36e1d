package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/domain"
	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações em lote de forma transacional,
// com bloqueio de linha (SELECT FOR UPDATE) e Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner        TxRunner
	produtoRepo     repository.ProdutoRepository
	localizacaoRepo repository.LocalizacaoRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	localizacaoRepo repository.LocalizacaoRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:        txRunner,
		produtoRepo:     produtoRepo,
		localizacaoRepo: localizacaoRepo,
	}
}

// Register valida o lote, inicia a transação, bloqueia as linhas de estoque e
// grava movimentação + itens. Saída sem saldo suficiente aborta o lote inteiro.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, operadorID string, in dto.RegistrarMovimentacaoRequest) (*entity.Movimentacao, error) {
	if in.Tipo != entity.MovimentacaoEntrada && in.Tipo != entity.MovimentacaoSaida {
		return nil, domain.ErrValidation
	}
	if len(in.Itens) == 0 || in.LocalizacaoID == 0 || operadorID == "" {
		return nil, domain.ErrValidation
	}
	for _, item := range in.Itens {
		if item.ProdutoID == 0 || !item.Quantidade.GreaterThan(decimal.Zero) {
			return nil, domain.ErrValidation
		}
	}

	loc, err := uc.localizacaoRepo.GetByID(in.LocalizacaoID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}

	// Valida que todos os produtos existem antes de abrir a transação
	for _, item := range in.Itens {
		p, err := uc.produtoRepo.GetByID(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:            uuid.New().String(),
		LocalizacaoID: in.LocalizacaoID,
		Tipo:          in.Tipo,
		OperadorID:    operadorID,
		CreatedAt:     now,
	}
	for _, item := range in.Itens {
		mov.Itens = append(mov.Itens, entity.ItemMovimentacao{
			ID:             uuid.New().String(),
			MovimentacaoID: mov.ID,
			ProdutoID:      item.ProdutoID,
			Quantidade:     item.Quantidade,
		})
	}

	// Inicia transação; Commit se tudo ok, Rollback se algo falhar (TxRunner.Run faz isso)
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		estoqueRepo repository.EstoqueRepository,
	) error {
		for _, item := range mov.Itens {
			// Bloqueia a linha de estoque (SELECT FOR UPDATE) para evitar corrida
			saldo, err := estoqueRepo.GetForUpdate(item.ProdutoID, in.LocalizacaoID)
			if err != nil {
				return err
			}
			switch in.Tipo {
			case entity.MovimentacaoEntrada:
				saldo.Quantidade = saldo.Quantidade.Add(item.Quantidade)
			case entity.MovimentacaoSaida:
				if saldo.Quantidade.LessThan(item.Quantidade) {
					return domain.ErrInsufficientStock
				}
				saldo.Quantidade = saldo.Quantidade.Sub(item.Quantidade)
			}
			saldo.UpdatedAt = now
			if err := estoqueRepo.Upsert(saldo); err != nil {
				return err
			}
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
