package dto

import "github.com/shopspring/decimal"

// RegistrarOcorrenciaRequest entrada para reportar divergência de estoque.
type RegistrarOcorrenciaRequest struct {
	LocalizacaoID int64           `json:"localizacao_id"`
	ProdutoID     int64           `json:"produto_id"`
	QtdeEsperada  decimal.Decimal `json:"qtde_esperada"`
	QtdeContada   decimal.Decimal `json:"qtde_contada"`
	Observacao    string          `json:"observacao"`
}

// OcorrenciaResponse saída de uma ocorrência registrada.
type OcorrenciaResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
