package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto.
type ProdutoRepository interface {
	GetByID(id int64) (*entity.Produto, error)
	GetByEAN(ean string) (*entity.Produto, error)
}
