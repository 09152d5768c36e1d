package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/inventory"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	LocalizacaoUC *inventory.LocalizacaoUseCase
	ProdutoUC     *inventory.ProdutoUseCase
	MovimentoUC   *inventory.RegisterMovementUseCase
	OcorrenciaUC  *inventory.OcorrenciaUseCase
	OperadorUC    *inventory.OperadorUseCase
	JWTSecret     string
}

// Router registra as rotas da API. Todas exigem Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	localizacoes := api.Group("/localizacoes")
	localizacaoHandler := NewLocalizacaoHandler(deps.LocalizacaoUC)
	localizacoes.Get("/codigo/:ean", localizacaoHandler.GetByEAN)
	localizacoes.Post("/:id/abrir", localizacaoHandler.Abrir)
	localizacoes.Post("/:id/fechar", localizacaoHandler.Fechar)
	localizacoes.Get("/:id/estoque", localizacaoHandler.Estoque)

	produtos := api.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Get("/codigo/:ean", produtoHandler.GetByEAN)

	movimentacoes := api.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentoUC)
	movimentacoes.Post("/", movimentacaoHandler.Registrar)

	ocorrencias := api.Group("/ocorrencias")
	ocorrenciaHandler := NewOcorrenciaHandler(deps.OcorrenciaUC)
	ocorrencias.Post("/", ocorrenciaHandler.Registrar)

	operadores := api.Group("/operadores")
	operadorHandler := NewOperadorHandler(deps.OperadorUC)
	operadores.Get("/atual", operadorHandler.Atual)
}
