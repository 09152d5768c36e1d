// Package api implementa o cliente HTTP do coletor contra o serviço de
// inventário. Cada método traduz o status HTTP nos erros sentinela de
// domínio que o fluxo de coleta espera.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/internal/coletor/workflow"
	"github.com/armazemdigital/wms/internal/domain"
	"github.com/armazemdigital/wms/pkg/config"
)

// Client fala JSON com o serviço de inventário usando token fixo do coletor.
// O timeout vem da configuração e vale para a requisição inteira.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(cfg config.ColetorConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

var _ workflow.InventoryService = (*Client)(nil)

func (c *Client) LocalizacaoPorCodigo(ctx context.Context, code string) (*workflow.LocalizacaoInfo, error) {
	var resp dto.LocalizacaoResponse
	if err := c.get(ctx, "/api/localizacoes/codigo/"+code, &resp); err != nil {
		return nil, err
	}
	return &workflow.LocalizacaoInfo{ID: resp.ID, EAN: resp.EAN, Nome: resp.Nome}, nil
}

func (c *Client) AbrirLocalizacao(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/localizacoes/%d/abrir", id), nil, nil)
}

func (c *Client) FecharLocalizacao(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/localizacoes/%d/fechar", id), nil, nil)
}

func (c *Client) EstoquePorLocalizacao(ctx context.Context, id int64) ([]workflow.StockItem, error) {
	var resp []dto.EstoqueItemResponse
	if err := c.get(ctx, fmt.Sprintf("/api/localizacoes/%d/estoque", id), &resp); err != nil {
		return nil, err
	}
	itens := make([]workflow.StockItem, 0, len(resp))
	for _, it := range resp {
		qtde, err := decimal.NewFromString(it.Quantidade)
		if err != nil {
			return nil, fmt.Errorf("%w: quantidade %q do produto %d", domain.ErrSchema, it.Quantidade, it.ProdutoID)
		}
		itens = append(itens, workflow.StockItem{
			ProdutoID:  it.ProdutoID,
			SKU:        it.SKU,
			EAN:        it.EAN,
			Descricao:  it.Descricao,
			Quantidade: qtde,
		})
	}
	return itens, nil
}

func (c *Client) ProdutoPorCodigo(ctx context.Context, code string) (*workflow.ProdutoInfo, error) {
	var resp dto.ProdutoResponse
	if err := c.get(ctx, "/api/produtos/codigo/"+code, &resp); err != nil {
		return nil, err
	}
	return &workflow.ProdutoInfo{
		ID:        resp.ID,
		SKU:       resp.SKU,
		EAN:       resp.EAN,
		Descricao: resp.Descricao,
		FotoURL:   resp.FotoURL,
	}, nil
}

func (c *Client) RegistrarMovimentacao(ctx context.Context, mov workflow.Movimentacao) (*workflow.Recibo, error) {
	req := dto.RegistrarMovimentacaoRequest{
		LocalizacaoID: mov.LocalizacaoID,
		Tipo:          mov.Tipo,
		Itens:         make([]dto.ItemMovimentacaoRequest, 0, len(mov.Linhas)),
	}
	for _, linha := range mov.Linhas {
		req.Itens = append(req.Itens, dto.ItemMovimentacaoRequest{
			ProdutoID:  linha.ProdutoID,
			Quantidade: decimal.NewFromInt(int64(linha.Qtde)),
		})
	}
	var resp dto.MovimentacaoResponse
	if err := c.post(ctx, "/api/movimentacoes", req, &resp); err != nil {
		return nil, err
	}
	return &workflow.Recibo{ID: resp.ID, Itens: resp.Itens, CreatedAt: resp.CreatedAt}, nil
}

func (c *Client) OperadorAtual(ctx context.Context) (*workflow.Operador, error) {
	var resp dto.OperadorResponse
	if err := c.get(ctx, "/api/operadores/atual", &resp); err != nil {
		return nil, err
	}
	return &workflow.Operador{ID: resp.ID, Nome: resp.Nome, Role: resp.Role}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar corpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSchema, err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body dto.ErrorResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusConflict:
		switch body.Code {
		case "LOCK_CONFLICT":
			return domain.ErrLockConflict
		case "INSUFFICIENT_STOCK":
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, body.Message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", domain.ErrValidation, body.Message)
	}
	return fmt.Errorf("%w: status %d", domain.ErrNetwork, resp.StatusCode)
}
