package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ocorrencia registra uma divergência entre o estoque do sistema e a contagem
// física em uma localização.
type Ocorrencia struct {
	ID            string // UUID
	LocalizacaoID int64
	ProdutoID     int64
	QtdeEsperada  decimal.Decimal // quantidade no sistema, deve ser positiva
	QtdeContada   decimal.Decimal
	Observacao    string
	OperadorID    string
	CreatedAt     time.Time
}
