package inventory

import (
	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/domain/repository"
)

// ProdutoUseCase consulta produtos por código de barras.
type ProdutoUseCase struct {
	produtoRepo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo}
}

// GetByEAN resolve um produto pelo código de barras lido.
func (uc *ProdutoUseCase) GetByEAN(ean string) (*dto.ProdutoResponse, error) {
	p, err := uc.produtoRepo.GetByEAN(ean)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProdutoResponse{
		ID:        p.ID,
		SKU:       p.SKU,
		EAN:       p.EAN,
		Descricao: p.Descricao,
		FotoURL:   p.FotoURL,
	}, nil
}
