package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/armazemdigital/wms/internal/coletor/api"
	"github.com/armazemdigital/wms/internal/coletor/cache"
	"github.com/armazemdigital/wms/internal/coletor/workflow"
	"github.com/armazemdigital/wms/internal/tui"
	"github.com/armazemdigital/wms/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "carregar configuração:", err)
		os.Exit(1)
	}
	if cfg.Coletor.Token == "" {
		fmt.Fprintln(os.Stderr, "COLETOR_TOKEN é obrigatório")
		os.Exit(1)
	}
	operacao := cfg.Coletor.Operacao
	if operacao != workflow.OperacaoEntrada && operacao != workflow.OperacaoSaida {
		fmt.Fprintf(os.Stderr, "COLETOR_OPERACAO inválida: %q (use entrada ou saida)\n", operacao)
		os.Exit(1)
	}

	client := api.NewClient(cfg.Coletor)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	operador, err := client.OperadorAtual(ctx)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, "identificar operador:", err)
		os.Exit(1)
	}

	lookup := cache.NewLookup(cfg.Coletor.CacheTTL)
	controller := workflow.NewController(operacao, *operador)
	resolver := workflow.NewResolver(client, lookup)
	submitter := workflow.NewSubmitter(client)

	app := tui.NewApp(controller, resolver, submitter, client, cfg.Coletor.Debounce)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "terminal do coletor:", err)
		os.Exit(1)
	}
}
