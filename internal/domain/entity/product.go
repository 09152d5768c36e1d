package entity

import "time"

// Produto representa um item armazenável, identificado por SKU e por EAN.
type Produto struct {
	ID        int64
	SKU       string
	EAN       string
	Descricao string
	FotoURL   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
