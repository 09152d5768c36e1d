package entity

import "time"

// Localizacao representa um endereço físico de armazenagem (zona + fileira + lado),
// identificado por um código de barras EAN único.
type Localizacao struct {
	ID        int64
	EAN       string
	Nome      string // nome de exibição, ex.: "A1 - Armazém 1"
	ZonaID    int64
	AbertaPor string // OperadorID que detém o lock; vazio = livre
	AbertaEm  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Aberta indica se a localização está com lock ativo.
func (l *Localizacao) Aberta() bool {
	return l.AbertaPor != ""
}
