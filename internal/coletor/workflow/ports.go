package workflow

import "context"

// LocalizacaoInfo identidade resolvida de uma localização.
type LocalizacaoInfo struct {
	ID   int64
	EAN  string
	Nome string
}

// ProdutoInfo identidade resolvida de um produto.
type ProdutoInfo struct {
	ID        int64
	SKU       string
	EAN       string
	Descricao string
	FotoURL   string
}

// Movimentacao é o lote enviado ao serviço de inventário.
type Movimentacao struct {
	LocalizacaoID int64
	Tipo          string // entrada | saida
	OperadorID    string
	Linhas        []GroupedLine
}

// InventoryService é o porto para o serviço de inventário. Erros de domínio
// esperados: domain.ErrNotFound quando o código não resolve; demais falhas
// chegam embrulhando domain.ErrNetwork ou domain.ErrSchema.
type InventoryService interface {
	LocalizacaoPorCodigo(ctx context.Context, code string) (*LocalizacaoInfo, error)
	AbrirLocalizacao(ctx context.Context, id int64) error
	FecharLocalizacao(ctx context.Context, id int64) error
	EstoquePorLocalizacao(ctx context.Context, id int64) ([]StockItem, error)
	ProdutoPorCodigo(ctx context.Context, code string) (*ProdutoInfo, error)
	RegistrarMovimentacao(ctx context.Context, mov Movimentacao) (*Recibo, error)
	OperadorAtual(ctx context.Context) (*Operador, error)
}
