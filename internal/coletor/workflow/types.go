// Package workflow implementa o fluxo de movimentação guiado por leitura de
// código de barras: abrir localização, acumular leituras de produto, validar
// contra o saldo conhecido e enviar a transferência em lote.
//
// A lógica de transição é pura: cada operação devolve uma lista de efeitos
// (alerta, rolar para o fim, foco no campo de leitura, fechar localização)
// que um driver externo executa. Isso mantém o núcleo testável sem UI.
package workflow

import "github.com/shopspring/decimal"

// ScanEvent é uma leitura de produto resolvida com sucesso. Imutável depois
// de criado; sai do acumulador apenas por remoção explícita ou reset do fluxo.
type ScanEvent struct {
	ProdutoID int64
	Descricao string
	SKU       string
	EAN       string
	FotoURL   string
}

// LocationSession é a localização aberta para a movimentação corrente.
// Existe pelo tempo de uma operação; destruída no envio, cancelamento ou
// confirmação de saída da tela.
type LocationSession struct {
	LocalizacaoID int64
	Nome          string
	EANAberto     string // código originalmente lido, usado no fechamento
	Travada       bool
}

// GroupedLine é uma visão derivada do acumulador: leituras do mesmo produto
// agrupadas com contagem. Nunca é persistida por si só.
type GroupedLine struct {
	ProdutoID int64
	Evento    ScanEvent // primeiro evento do produto (dados de exibição)
	Qtde      int
	Indices   []int // posições dos eventos constituintes no acumulador
}

// StockItem é o saldo local de um produto na localização aberta, usado para
// validar saídas sem nova consulta ao serviço.
type StockItem struct {
	ProdutoID  int64
	SKU        string
	EAN        string
	Descricao  string
	Quantidade decimal.Decimal
}

// Tipos de operação do coletor.
const (
	OperacaoEntrada = "entrada"
	OperacaoSaida   = "saida"
)

// Recibo é a confirmação devolvida pelo serviço ao registrar a movimentação.
type Recibo struct {
	ID        string
	Itens     int
	CreatedAt string
}

// Operador identifica quem executa a operação.
type Operador struct {
	ID   string
	Nome string
	Role string
}
