package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/application/inventory"
	"github.com/armazemdigital/wms/internal/domain"
	"github.com/armazemdigital/wms/internal/domain/entity"
)

func novaLocalizacaoUC() (*inventory.LocalizacaoUseCase, *fakeLocalizacaoRepo, *fakeEstoqueRepo) {
	locs := &fakeLocalizacaoRepo{porID: map[int64]*entity.Localizacao{
		42: {ID: 42, EAN: "7891234567895", Nome: "A1 - Armazém 1"},
	}}
	produtos := &fakeProdutoRepo{porID: map[int64]*entity.Produto{
		7: {ID: 7, SKU: "CX-007", EAN: "7891000100016", Descricao: "Caixa padrão"},
	}}
	estoque := newFakeEstoqueRepo()
	return inventory.NewLocalizacaoUseCase(locs, estoque, produtos), locs, estoque
}

func TestLocalizacao_GetByEAN(t *testing.T) {
	uc, _, _ := novaLocalizacaoUC()

	out, err := uc.GetByEAN("7891234567895")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, "A1 - Armazém 1", out.Nome)

	out, err = uc.GetByEAN("0000000000000")
	require.NoError(t, err)
	assert.Nil(t, out, "EAN desconhecido deve devolver nil")
}

func TestLocalizacao_AbrirReabrirMesmoOperador(t *testing.T) {
	uc, locs, _ := novaLocalizacaoUC()

	require.NoError(t, uc.Abrir(42, "op-1"))
	assert.Equal(t, "op-1", locs.porID[42].AbertaPor)

	// Reabertura pelo mesmo operador é tolerada
	require.NoError(t, uc.Abrir(42, "op-1"))
}

func TestLocalizacao_AbrirConflitoDeLock(t *testing.T) {
	uc, _, _ := novaLocalizacaoUC()

	require.NoError(t, uc.Abrir(42, "op-1"))
	err := uc.Abrir(42, "op-2")
	assert.ErrorIs(t, err, domain.ErrLockConflict)
}

func TestLocalizacao_FecharIdempotente(t *testing.T) {
	uc, locs, _ := novaLocalizacaoUC()

	require.NoError(t, uc.Abrir(42, "op-1"))
	require.NoError(t, uc.Fechar(42))
	assert.Empty(t, locs.porID[42].AbertaPor)

	// Fechar localização já livre não é erro
	require.NoError(t, uc.Fechar(42))
}

func TestLocalizacao_EstoquePorLocalizacao(t *testing.T) {
	uc, _, estoque := novaLocalizacaoUC()
	estoque.seed(7, 42, "12")

	items, err := uc.EstoquePorLocalizacao(42)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CX-007", items[0].SKU)
	assert.Equal(t, "12", items[0].Quantidade)
}

func TestOcorrencia_QtdeEsperadaNaoPositiva(t *testing.T) {
	locs := &fakeLocalizacaoRepo{porID: map[int64]*entity.Localizacao{
		42: {ID: 42, EAN: "7891234567895", Nome: "A1 - Armazém 1"},
	}}
	produtos := &fakeProdutoRepo{porID: map[int64]*entity.Produto{
		7: {ID: 7, SKU: "CX-007", EAN: "7891000100016"},
	}}
	ocorrencias := &fakeOcorrenciaRepo{}
	uc := inventory.NewOcorrenciaUseCase(ocorrencias, locs, produtos)

	_, err := uc.Registrar("op-1", dto.RegistrarOcorrenciaRequest{
		LocalizacaoID: 42,
		ProdutoID:     7,
		QtdeEsperada:  qtde("0"),
		QtdeContada:   qtde("1"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, ocorrencias.criadas)

	oc, err := uc.Registrar("op-1", dto.RegistrarOcorrenciaRequest{
		LocalizacaoID: 42,
		ProdutoID:     7,
		QtdeEsperada:  qtde("5"),
		QtdeContada:   qtde("3"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, oc.ID)
	assert.Len(t, ocorrencias.criadas, 1)
}

type fakeOcorrenciaRepo struct {
	criadas []*entity.Ocorrencia
}

func (r *fakeOcorrenciaRepo) Create(oc *entity.Ocorrencia) error {
	r.criadas = append(r.criadas, oc)
	return nil
}
