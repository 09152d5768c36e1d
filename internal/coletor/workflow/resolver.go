package workflow

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/armazemdigital/wms/internal/coletor/cache"
	"github.com/armazemdigital/wms/internal/coletor/scan"
	"github.com/armazemdigital/wms/internal/domain"
)

// Resolver resolve códigos de barras lidos contra o serviço de inventário,
// com cache por sessão para poupar idas repetidas ao serviço.
type Resolver struct {
	service InventoryService
	cache   *cache.Lookup
}

// NewResolver constrói o resolvedor com o cache injetado pelo controlador.
func NewResolver(service InventoryService, c *cache.Lookup) *Resolver {
	return &Resolver{service: service, cache: c}
}

// ResolveLocation resolve o código de uma localização e a abre no serviço.
// A abertura (lock) e a consulta de saldo são disparadas juntas e ambas
// aguardadas: se qualquer uma falhar a resolução inteira falha e o fluxo
// permanece no estado anterior. O serviço tolera reaberturas do mesmo código
// antes do fechamento; não há tratamento especial aqui.
func (r *Resolver) ResolveLocation(ctx context.Context, raw string) (*LocationSession, []StockItem, error) {
	code := scan.Sanitize(raw)
	if code == "" {
		return nil, nil, domain.ErrNotFound
	}

	info, err := r.lookupLocalizacao(ctx, code)
	if err != nil {
		return nil, nil, err
	}

	var estoque []StockItem
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.service.AbrirLocalizacao(gctx, info.ID)
	})
	g.Go(func() error {
		var err error
		estoque, err = r.service.EstoquePorLocalizacao(gctx, info.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		// O serviço pode ter ficado com o lock; quem cancela depois fecha explicitamente.
		return nil, nil, fmt.Errorf("abrir localização %s: %w", code, err)
	}

	return &LocationSession{
		LocalizacaoID: info.ID,
		Nome:          info.Nome,
		EANAberto:     code,
		Travada:       true,
	}, estoque, nil
}

// ResolveProduct resolve o código de um produto e valida contra o saldo da
// localização aberta. Em saída, produto sem saldo devolve domain.ErrNotInStock
// e a leitura pendente deve ser descartada pelo chamador.
func (r *Resolver) ResolveProduct(ctx context.Context, raw string, estoque []StockItem, operacao string) (ScanEvent, error) {
	code := scan.Sanitize(raw)
	if code == "" {
		return ScanEvent{}, domain.ErrNotFound
	}

	info, err := r.lookupProduto(ctx, code)
	if err != nil {
		return ScanEvent{}, err
	}

	if operacao == OperacaoSaida {
		found := false
		for _, s := range estoque {
			if s.ProdutoID == info.ID {
				found = true
				break
			}
		}
		if !found {
			return ScanEvent{}, domain.ErrNotInStock
		}
	}

	return ScanEvent{
		ProdutoID: info.ID,
		Descricao: info.Descricao,
		SKU:       info.SKU,
		EAN:       info.EAN,
		FotoURL:   info.FotoURL,
	}, nil
}

func (r *Resolver) lookupLocalizacao(ctx context.Context, code string) (*LocalizacaoInfo, error) {
	if v, ok := r.cache.Get(cache.KindLocalizacao, code); ok {
		if info, ok := v.(*LocalizacaoInfo); ok {
			return info, nil
		}
	}
	info, err := r.service.LocalizacaoPorCodigo(ctx, code)
	if err != nil {
		return nil, err
	}
	r.cache.Set(cache.KindLocalizacao, code, info)
	return info, nil
}

func (r *Resolver) lookupProduto(ctx context.Context, code string) (*ProdutoInfo, error) {
	if v, ok := r.cache.Get(cache.KindProduto, code); ok {
		if info, ok := v.(*ProdutoInfo); ok {
			return info, nil
		}
	}
	info, err := r.service.ProdutoPorCodigo(ctx, code)
	if err != nil {
		return nil, err
	}
	r.cache.Set(cache.KindProduto, code, info)
	return info, nil
}
