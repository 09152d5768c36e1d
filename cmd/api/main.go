package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/armazemdigital/wms/internal/application/inventory"
	"github.com/armazemdigital/wms/internal/infrastructure/postgres"
	httpRouter "github.com/armazemdigital/wms/internal/interfaces/http"
	"github.com/armazemdigital/wms/pkg/config"
	"github.com/armazemdigital/wms/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	localizacaoRepo := postgres.NewLocalizacaoRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	ocorrenciaRepo := postgres.NewOcorrenciaRepository(pool)
	operadorRepo := postgres.NewOperadorRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	localizacaoUC := inventory.NewLocalizacaoUseCase(localizacaoRepo, estoqueRepo, produtoRepo)
	produtoUC := inventory.NewProdutoUseCase(produtoRepo)
	movimentoUC := inventory.NewRegisterMovementUseCase(txRunner, produtoRepo, localizacaoRepo)
	ocorrenciaUC := inventory.NewOcorrenciaUseCase(ocorrenciaRepo, localizacaoRepo, produtoRepo)
	operadorUC := inventory.NewOperadorUseCase(operadorRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Armazém WMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LocalizacaoUC: localizacaoUC,
		ProdutoUC:     produtoUC,
		MovimentoUC:   movimentoUC,
		OcorrenciaUC:  ocorrenciaUC,
		OperadorUC:    operadorUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
