package dto

import "github.com/shopspring/decimal"

// ItemMovimentacaoRequest linha agrupada enviada pelo coletor (produto + quantidade).
type ItemMovimentacaoRequest struct {
	ProdutoID  int64           `json:"produto_id"`
	Quantidade decimal.Decimal `json:"quantidade"`
}

// RegistrarMovimentacaoRequest entrada para registrar uma movimentação em lote.
type RegistrarMovimentacaoRequest struct {
	LocalizacaoID int64                     `json:"localizacao_id"`
	Tipo          string                    `json:"tipo"` // entrada | saida
	Itens         []ItemMovimentacaoRequest `json:"itens"`
}

// MovimentacaoResponse recibo da movimentação registrada.
type MovimentacaoResponse struct {
	ID         string `json:"id"`
	Itens      int    `json:"itens"`
	CreatedAt  string `json:"created_at"`
	OperadorID string `json:"operador_id"`
}
