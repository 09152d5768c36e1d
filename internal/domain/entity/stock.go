package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estoque representa o saldo atual de um produto em uma localização.
type Estoque struct {
	ProdutoID     int64
	LocalizacaoID int64
	Quantidade    decimal.Decimal
	UpdatedAt     time.Time
}
