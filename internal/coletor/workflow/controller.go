package workflow

import (
	"errors"
	"fmt"
	"sort"

	"github.com/armazemdigital/wms/internal/domain"
)

// State é o estado corrente do fluxo de coleta.
type State int

const (
	// StateIdle aguarda a leitura de uma localização.
	StateIdle State = iota
	// StateLocationOpen tem localização travada e aceita leituras de produto.
	StateLocationOpen
	// StateConfirming aguarda confirmação do operador antes do envio.
	StateConfirming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLocationOpen:
		return "location_open"
	case StateConfirming:
		return "confirming"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Controller é a máquina de estados da coleta. Cada transição devolve os
// efeitos a executar; o controlador nunca toca rede nem tela diretamente.
//
// Respostas assíncronas carregam o número de sequência emitido por
// IssueResolution; respostas de leituras antigas (sequência diferente da
// última emitida) são descartadas em silêncio.
type Controller struct {
	operacao string
	operador Operador

	state   State
	sessao  *LocationSession
	estoque []StockItem
	acc     *Accumulator

	lastSeq    uint64
	pendente   bool
	submitting bool
}

// NewController cria o controlador em StateIdle para a operação dada
// ("entrada" ou "saida").
func NewController(operacao string, operador Operador) *Controller {
	return &Controller{
		operacao: operacao,
		operador: operador,
		state:    StateIdle,
		acc:      NewAccumulator(),
	}
}

func (c *Controller) State() State             { return c.state }
func (c *Controller) Operacao() string         { return c.operacao }
func (c *Controller) Operador() Operador       { return c.operador }
func (c *Controller) Sessao() *LocationSession { return c.sessao }
func (c *Controller) Estoque() []StockItem     { return c.estoque }
func (c *Controller) Linhas() []GroupedLine    { return c.acc.GroupByProduct() }
func (c *Controller) TotalLeituras() int       { return c.acc.Len() }
func (c *Controller) ResolucaoPendente() bool  { return c.pendente }
func (c *Controller) EnvioPendente() bool      { return c.submitting }

// IssueResolution emite um novo número de sequência para uma resolução de
// código. Chamadas posteriores invalidam as anteriores: só a resposta com a
// última sequência é aplicada.
func (c *Controller) IssueResolution() uint64 {
	c.lastSeq++
	c.pendente = true
	return c.lastSeq
}

func (c *Controller) stale(seq uint64) bool {
	return seq != c.lastSeq
}

// ApplyLocationResult aplica o resultado da resolução de uma localização.
func (c *Controller) ApplyLocationResult(seq uint64, sessao *LocationSession, estoque []StockItem, err error) []Effect {
	if c.stale(seq) {
		return nil
	}
	c.pendente = false
	if c.state != StateIdle {
		return nil
	}
	if err != nil {
		return []Effect{
			EffectAlert{Mensagem: mensagemErroLocalizacao(err), Erro: true},
			EffectFocusScan{},
		}
	}
	c.sessao = sessao
	c.estoque = estoque
	c.state = StateLocationOpen
	return []Effect{
		EffectAlert{Mensagem: fmt.Sprintf("Localização %s aberta", sessao.Nome)},
		EffectFocusScan{},
	}
}

// ApplyProductResult aplica o resultado da resolução de um produto. Leituras
// inválidas (produto inexistente ou sem saldo em saída) não entram no
// acumulador.
func (c *Controller) ApplyProductResult(seq uint64, evento ScanEvent, err error) []Effect {
	if c.stale(seq) {
		return nil
	}
	c.pendente = false
	if c.state != StateLocationOpen {
		return nil
	}
	if err != nil {
		return []Effect{
			EffectAlert{Mensagem: mensagemErroProduto(err), Erro: true},
			EffectFocusScan{},
		}
	}
	c.acc.Append(evento)
	return []Effect{EffectScrollToEnd{}, EffectFocusScan{}}
}

// RemoveLine remove do acumulador todas as leituras da linha agrupada i.
// Índice fora do intervalo é ignorado.
func (c *Controller) RemoveLine(i int) []Effect {
	if c.state != StateLocationOpen {
		return nil
	}
	linhas := c.acc.GroupByProduct()
	if i < 0 || i >= len(linhas) {
		return nil
	}
	idx := append([]int(nil), linhas[i].Indices...)
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, j := range idx {
		c.acc.RemoveAt(j)
	}
	return []Effect{EffectFocusScan{}}
}

// RequestSave pede o envio da coleta. Sem leituras acumuladas não há o que
// enviar; com leituras, passa ao estado de confirmação.
func (c *Controller) RequestSave() []Effect {
	if c.state != StateLocationOpen {
		return nil
	}
	if c.acc.Len() == 0 {
		return []Effect{
			EffectAlert{Mensagem: "Nenhuma leitura para salvar", Erro: true},
			EffectFocusScan{},
		}
	}
	c.state = StateConfirming
	return nil
}

// Confirm confirma o envio. O chamador dispara o Submitter com as linhas
// devolvidas e depois chama ApplySubmitResult.
func (c *Controller) Confirm() ([]GroupedLine, []Effect) {
	if c.state != StateConfirming || c.submitting {
		return nil, nil
	}
	c.submitting = true
	return c.acc.GroupByProduct(), nil
}

// Decline recusa a confirmação e volta à coleta, preservando as leituras.
func (c *Controller) Decline() []Effect {
	if c.state != StateConfirming || c.submitting {
		return nil
	}
	c.state = StateLocationOpen
	return []Effect{EffectFocusScan{}}
}

// ApplySubmitResult aplica o resultado do envio. Em sucesso a sessão é
// encerrada: o acumulador zera, a localização é fechada por efeito e o fluxo
// volta a StateIdle aguardando a próxima localização.
func (c *Controller) ApplySubmitResult(recibo *Recibo, err error) []Effect {
	if c.state != StateConfirming || !c.submitting {
		return nil
	}
	c.submitting = false
	if err != nil {
		c.state = StateLocationOpen
		return []Effect{
			EffectAlert{Mensagem: mensagemErroEnvio(err), Erro: true},
			EffectFocusScan{},
		}
	}
	fechamento := EffectCloseLocation{
		LocalizacaoID: c.sessao.LocalizacaoID,
		EAN:           c.sessao.EANAberto,
	}
	c.reset()
	return []Effect{
		fechamento,
		EffectAlert{Mensagem: fmt.Sprintf("Movimentação %s registrada", recibo.ID)},
		EffectFocusScan{},
	}
}

// Cancel abandona a coleta corrente. Com localização aberta, emite o
// fechamento exatamente uma vez, com o código originalmente aberto.
func (c *Controller) Cancel() []Effect {
	if c.state == StateIdle || c.submitting {
		return nil
	}
	fechamento := EffectCloseLocation{
		LocalizacaoID: c.sessao.LocalizacaoID,
		EAN:           c.sessao.EANAberto,
	}
	c.reset()
	return []Effect{
		fechamento,
		EffectAlert{Mensagem: "Coleta cancelada"},
		EffectFocusScan{},
	}
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.sessao = nil
	c.estoque = nil
	c.acc.Reset()
	c.pendente = false
}

func mensagemErroLocalizacao(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Localização não encontrada"
	case errors.Is(err, domain.ErrLockConflict):
		return "Localização em uso por outro operador"
	case errors.Is(err, domain.ErrNetwork):
		return "Falha de rede, tente novamente"
	default:
		return "Erro ao abrir localização"
	}
}

func mensagemErroProduto(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Produto não encontrado"
	case errors.Is(err, domain.ErrNotInStock):
		return "Produto sem saldo nesta localização"
	case errors.Is(err, domain.ErrNetwork):
		return "Falha de rede, tente novamente"
	default:
		return "Erro ao consultar produto"
	}
}

func mensagemErroEnvio(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Saldo insuficiente para a saída"
	case errors.Is(err, domain.ErrValidation):
		return "Movimentação inválida"
	case errors.Is(err, domain.ErrNetwork):
		return "Falha de rede, o envio não foi confirmado"
	default:
		return "Erro ao registrar movimentação"
	}
}
