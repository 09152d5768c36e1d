package repository

import "github.com/armazemdigital/wms/internal/domain/entity"

// LocalizacaoRepository define o porto de persistência para Localizacao (DIP).
type LocalizacaoRepository interface {
	GetByID(id int64) (*entity.Localizacao, error)
	GetByEAN(ean string) (*entity.Localizacao, error)
	// Abrir grava o lock da localização para o operador. Reabertura pelo mesmo
	// operador é tolerada; operador diferente recebe domain.ErrLockConflict.
	Abrir(id int64, operadorID string) error
	// Fechar libera o lock. Idempotente: fechar localização já livre não é erro.
	Fechar(id int64) error
}
