package workflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazemdigital/wms/internal/coletor/cache"
	"github.com/armazemdigital/wms/internal/coletor/workflow"
	"github.com/armazemdigital/wms/internal/domain"
)

func operadorTeste() workflow.Operador {
	return workflow.Operador{ID: "op-1", Nome: "Maria Souza", Role: "operador"}
}

// abreLocalizacao leva o controlador de Idle para LocationOpen usando o
// resolvedor real contra o serviço fake.
func abreLocalizacao(t *testing.T, c *workflow.Controller, r *workflow.Resolver) {
	t.Helper()
	seq := c.IssueResolution()
	sessao, estoque, err := r.ResolveLocation(context.Background(), "7891234567895")
	require.NoError(t, err)
	c.ApplyLocationResult(seq, sessao, estoque, err)
	require.Equal(t, workflow.StateLocationOpen, c.State())
}

// leProduto resolve e aplica uma leitura de produto.
func leProduto(t *testing.T, c *workflow.Controller, r *workflow.Resolver, codigo string) []workflow.Effect {
	t.Helper()
	seq := c.IssueResolution()
	ev, err := r.ResolveProduct(context.Background(), codigo, c.Estoque(), c.Operacao())
	return c.ApplyProductResult(seq, ev, err)
}

// ─────────────────────────────────────────────
// Abertura de localização
// ─────────────────────────────────────────────

func TestController_AberturaDeLocalizacao(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())

	require.Equal(t, workflow.StateIdle, c.State())

	seq := c.IssueResolution()
	sessao, estoque, err := r.ResolveLocation(context.Background(), "7891234567895")
	require.NoError(t, err)
	efeitos := c.ApplyLocationResult(seq, sessao, estoque, err)

	assert.Equal(t, workflow.StateLocationOpen, c.State())
	assert.Equal(t, int64(42), c.Sessao().LocalizacaoID)
	assert.Equal(t, "A1 - Armazém 1", c.Sessao().Nome)
	assert.Len(t, c.Estoque(), 1)
	assert.NotEmpty(t, efeitos)
}

func TestController_LocalizacaoNaoEncontradaPermaneceIdle(t *testing.T) {
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())

	seq := c.IssueResolution()
	efeitos := c.ApplyLocationResult(seq, nil, nil, domain.ErrNotFound)

	assert.Equal(t, workflow.StateIdle, c.State())
	require.NotEmpty(t, efeitos)
	alerta, ok := efeitos[0].(workflow.EffectAlert)
	require.True(t, ok)
	assert.True(t, alerta.Erro)
}

// ─────────────────────────────────────────────
// Leituras de produto
// ─────────────────────────────────────────────

func TestController_LeituraInvalidaNaoAcumula(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoSaida, operadorTeste())
	abreLocalizacao(t, c, r)

	// Produto existe mas não tem saldo nesta localização
	svc.produtos["7899999999999"] = &workflow.ProdutoInfo{ID: 99, SKU: "ZZ-099", EAN: "7899999999999"}
	efeitos := leProduto(t, c, r, "7899999999999")

	assert.Zero(t, c.TotalLeituras(), "leitura recusada não entra no acumulador")
	require.NotEmpty(t, efeitos)
	alerta, ok := efeitos[0].(workflow.EffectAlert)
	require.True(t, ok)
	assert.True(t, alerta.Erro)
}

func TestController_LeiturasRepetidasAgrupam(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)

	for i := 0; i < 3; i++ {
		efeitos := leProduto(t, c, r, "7891000100016")
		require.NotEmpty(t, efeitos)
	}

	linhas := c.Linhas()
	require.Len(t, linhas, 1, "três leituras do mesmo produto viram uma linha")
	assert.Equal(t, 3, linhas[0].Qtde)
	assert.Equal(t, int64(7), linhas[0].ProdutoID)
	assert.Equal(t, 3, c.TotalLeituras())
}

func TestController_RemoveLinhaRemoveTodasAsLeituras(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)

	leProduto(t, c, r, "7891000100016")
	leProduto(t, c, r, "7891000100016")
	c.RemoveLine(0)

	assert.Zero(t, c.TotalLeituras())
	assert.Empty(t, c.Linhas())

	// Fora do intervalo é ignorado
	c.RemoveLine(5)
	assert.Zero(t, c.TotalLeituras())
}

// ─────────────────────────────────────────────
// Guarda de respostas atrasadas
// ─────────────────────────────────────────────

func TestController_RespostaAtrasadaEhDescartada(t *testing.T) {
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())

	antiga := c.IssueResolution()
	_ = c.IssueResolution() // uma nova leitura invalida a anterior

	efeitos := c.ApplyLocationResult(antiga, &workflow.LocationSession{LocalizacaoID: 42}, nil, nil)

	assert.Nil(t, efeitos)
	assert.Equal(t, workflow.StateIdle, c.State(), "resposta de sequência antiga não muda estado")
	assert.True(t, c.ResolucaoPendente(), "a resolução mais recente segue pendente")
}

// ─────────────────────────────────────────────
// Salvar e confirmar
// ─────────────────────────────────────────────

func TestController_SalvarSemLeiturasNaoEnvia(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)

	efeitos := c.RequestSave()

	assert.Equal(t, workflow.StateLocationOpen, c.State(), "sem leituras não há confirmação")
	require.NotEmpty(t, efeitos)
	assert.Empty(t, svc.enviadas)
}

func TestController_FluxoCompletoDeEnvio(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	sub := workflow.NewSubmitter(svc)
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)

	for i := 0; i < 3; i++ {
		leProduto(t, c, r, "7891000100016")
	}

	c.RequestSave()
	require.Equal(t, workflow.StateConfirming, c.State())

	linhas, _ := c.Confirm()
	require.Len(t, linhas, 1)

	recibo, err := sub.Submit(context.Background(), *c.Sessao(), c.Operacao(), c.Operador().ID, linhas)
	require.NoError(t, err)
	efeitos := c.ApplySubmitResult(recibo, nil)

	// Um único POST, com a linha agrupada de quantidade 3
	require.Len(t, svc.enviadas, 1)
	enviada := svc.enviadas[0]
	assert.Equal(t, int64(42), enviada.LocalizacaoID)
	assert.Equal(t, workflow.OperacaoEntrada, enviada.Tipo)
	assert.Equal(t, "op-1", enviada.OperadorID)
	require.Len(t, enviada.Linhas, 1)
	assert.Equal(t, 3, enviada.Linhas[0].Qtde)

	// Sucesso encerra a sessão e pede o fechamento da localização
	assert.Equal(t, workflow.StateIdle, c.State())
	assert.Zero(t, c.TotalLeituras())
	assert.Nil(t, c.Sessao())
	require.NotEmpty(t, efeitos)
	fechamento, ok := efeitos[0].(workflow.EffectCloseLocation)
	require.True(t, ok)
	assert.Equal(t, int64(42), fechamento.LocalizacaoID)
	assert.Equal(t, "7891234567895", fechamento.EAN)
}

func TestController_RecusaVoltaParaColeta(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)
	leProduto(t, c, r, "7891000100016")

	c.RequestSave()
	c.Decline()

	assert.Equal(t, workflow.StateLocationOpen, c.State())
	assert.Equal(t, 1, c.TotalLeituras(), "recusar preserva as leituras")
}

func TestController_FalhaNoEnvioPreservaSessao(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoSaida, operadorTeste())
	abreLocalizacao(t, c, r)
	leProduto(t, c, r, "7891000100016")

	c.RequestSave()
	c.Confirm()
	efeitos := c.ApplySubmitResult(nil, domain.ErrInsufficientStock)

	assert.Equal(t, workflow.StateLocationOpen, c.State(), "falha no envio volta à coleta sem perder leituras")
	assert.Equal(t, 1, c.TotalLeituras())
	for _, ef := range efeitos {
		_, fechou := ef.(workflow.EffectCloseLocation)
		assert.False(t, fechou, "falha no envio não fecha a localização")
	}
}

// ─────────────────────────────────────────────
// Cancelamento
// ─────────────────────────────────────────────

func TestController_CancelarFechaLocalizacaoUmaVez(t *testing.T) {
	svc := novoServicoFake()
	r := workflow.NewResolver(svc, cache.NewLookup(0))
	c := workflow.NewController(workflow.OperacaoEntrada, operadorTeste())
	abreLocalizacao(t, c, r)
	leProduto(t, c, r, "7891000100016")

	efeitos := c.Cancel()

	require.NotEmpty(t, efeitos)
	fechamento, ok := efeitos[0].(workflow.EffectCloseLocation)
	require.True(t, ok)
	assert.Equal(t, int64(42), fechamento.LocalizacaoID)
	assert.Equal(t, "7891234567895", fechamento.EAN, "fecha com o código originalmente aberto")

	assert.Equal(t, workflow.StateIdle, c.State())
	assert.Zero(t, c.TotalLeituras())

	// Cancelar de novo em Idle não emite nada
	assert.Nil(t, c.Cancel())
}

// ─────────────────────────────────────────────
// Submitter
// ─────────────────────────────────────────────

func TestSubmitter_LoteVazioNaoChegaAoServico(t *testing.T) {
	svc := novoServicoFake()
	sub := workflow.NewSubmitter(svc)

	_, err := sub.Submit(context.Background(), workflow.LocationSession{LocalizacaoID: 42}, workflow.OperacaoEntrada, "op-1", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, svc.enviadas)
}

func TestSubmitter_PropagaErroDoServico(t *testing.T) {
	svc := novoServicoFake()
	svc.enviarErr = errors.New("boom")
	sub := workflow.NewSubmitter(svc)

	linhas := []workflow.GroupedLine{{ProdutoID: 7, Qtde: 1}}
	_, err := sub.Submit(context.Background(), workflow.LocationSession{LocalizacaoID: 42}, workflow.OperacaoEntrada, "op-1", linhas)
	assert.Error(t, err)
}
