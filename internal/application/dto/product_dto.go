package dto

// ProdutoResponse saída de um produto consultado por código de barras.
type ProdutoResponse struct {
	ID        int64  `json:"id"`
	SKU       string `json:"sku"`
	EAN       string `json:"ean"`
	Descricao string `json:"descricao"`
	FotoURL   string `json:"foto_url,omitempty"`
}
