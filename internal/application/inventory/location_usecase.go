package inventory

import (
	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/domain"
	"github.com/armazemdigital/wms/internal/domain/entity"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

// LocalizacaoUseCase consulta e controla o lock de localizações.
type LocalizacaoUseCase struct {
	localizacaoRepo repository.LocalizacaoRepository
	estoqueRepo     repository.EstoqueRepository
	produtoRepo     repository.ProdutoRepository
}

// NewLocalizacaoUseCase constrói o caso de uso.
func NewLocalizacaoUseCase(
	localizacaoRepo repository.LocalizacaoRepository,
	estoqueRepo repository.EstoqueRepository,
	produtoRepo repository.ProdutoRepository,
) *LocalizacaoUseCase {
	return &LocalizacaoUseCase{
		localizacaoRepo: localizacaoRepo,
		estoqueRepo:     estoqueRepo,
		produtoRepo:     produtoRepo,
	}
}

// GetByEAN resolve uma localização pelo código de barras lido.
func (uc *LocalizacaoUseCase) GetByEAN(ean string) (*dto.LocalizacaoResponse, error) {
	loc, err := uc.localizacaoRepo.GetByEAN(ean)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	return toLocalizacaoResponse(loc), nil
}

// Abrir adquire o lock da localização para o operador. Reabertura pelo mesmo
// operador antes do fechamento é tolerada; operador diferente recebe ErrLockConflict.
func (uc *LocalizacaoUseCase) Abrir(id int64, operadorID string) error {
	loc, err := uc.localizacaoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	if loc.Aberta() && loc.AbertaPor != operadorID {
		return domain.ErrLockConflict
	}
	return uc.localizacaoRepo.Abrir(id, operadorID)
}

// Fechar libera o lock da localização. Fechar localização já livre não é erro.
func (uc *LocalizacaoUseCase) Fechar(id int64) error {
	loc, err := uc.localizacaoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return uc.localizacaoRepo.Fechar(id)
}

// EstoquePorLocalizacao lista os saldos da localização com os dados do produto
// (lookup manual de relação, um produto por linha de saldo).
func (uc *LocalizacaoUseCase) EstoquePorLocalizacao(id int64) ([]dto.EstoqueItemResponse, error) {
	loc, err := uc.localizacaoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	saldos, err := uc.estoqueRepo.ListByLocalizacao(id)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EstoqueItemResponse, 0, len(saldos))
	for _, s := range saldos {
		p, err := uc.produtoRepo.GetByID(s.ProdutoID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		items = append(items, dto.EstoqueItemResponse{
			ProdutoID:  p.ID,
			SKU:        p.SKU,
			EAN:        p.EAN,
			Descricao:  p.Descricao,
			Quantidade: s.Quantidade.String(),
		})
	}
	return items, nil
}

func toLocalizacaoResponse(l *entity.Localizacao) *dto.LocalizacaoResponse {
	if l == nil {
		return nil
	}
	return &dto.LocalizacaoResponse{
		ID:     l.ID,
		EAN:    l.EAN,
		Nome:   l.Nome,
		Aberta: l.Aberta(),
	}
}
