package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovimentacaoEntrada = "entrada"
	MovimentacaoSaida   = "saida"
)

// Movimentacao representa uma transferência de estoque registrada de uma vez
// (todas as linhas agrupadas de uma sessão de coleta).
type Movimentacao struct {
	ID            string // UUID
	LocalizacaoID int64
	Tipo          string // entrada | saida
	OperadorID    string
	CreatedAt     time.Time
	Itens         []ItemMovimentacao
}

// ItemMovimentacao é uma linha agrupada de uma movimentação (produto + quantidade).
type ItemMovimentacao struct {
	ID             string // UUID
	MovimentacaoID string
	ProdutoID      int64
	Quantidade     decimal.Decimal
}
