package dto

// LocalizacaoResponse saída de uma localização.
type LocalizacaoResponse struct {
	ID     int64  `json:"id"`
	EAN    string `json:"ean"`
	Nome   string `json:"nome"`
	Aberta bool   `json:"aberta"`
}

// EstoqueItemResponse saldo de um produto na localização consultada.
type EstoqueItemResponse struct {
	ProdutoID  int64  `json:"produto_id"`
	SKU        string `json:"sku"`
	EAN        string `json:"ean"`
	Descricao  string `json:"descricao"`
	Quantidade string `json:"quantidade"`
}
