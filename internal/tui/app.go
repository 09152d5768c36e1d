// Package tui é o terminal do coletor. Segue a arquitetura Elm do bubbletea:
// o modelo guarda todo o estado de tela, Update reage a mensagens e View
// desenha. A lógica de coleta em si vive em internal/coletor/workflow; aqui
// só traduzimos teclas em transições e executamos os efeitos devolvidos.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/armazemdigital/wms/internal/coletor/workflow"
)

const requestTimeout = 30 * time.Second

var (
	tituloStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	sessaoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))
	erroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	avisoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
	linhaSelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F1FA8C"))
	moldura = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)
)

// Mensagens internas do loop de eventos.
type (
	// debounceMsg dispara a resolução de um código digitado. A geração
	// invalida ticks antigos quando o operador continua digitando.
	debounceMsg struct{ gen int }

	locationResultMsg struct {
		seq     uint64
		sessao  *workflow.LocationSession
		estoque []workflow.StockItem
		err     error
	}

	productResultMsg struct {
		seq uint64
		ev  workflow.ScanEvent
		err error
	}

	submitResultMsg struct {
		recibo *workflow.Recibo
		err    error
	}

	closeDoneMsg struct{ err error }
)

// App é o modelo principal do coletor.
type App struct {
	controller *workflow.Controller
	resolver   *workflow.Resolver
	submitter  *workflow.Submitter
	service    workflow.InventoryService

	scan     textinput.Model
	debounce time.Duration
	debGen   int

	selecionada   int
	confirmaSaida bool
	statusMsg     string
	statusErro    bool

	width  int
	height int
}

// NewApp monta o terminal do coletor já autenticado como operador.
func NewApp(
	controller *workflow.Controller,
	resolver *workflow.Resolver,
	submitter *workflow.Submitter,
	service workflow.InventoryService,
	debounce time.Duration,
) *App {
	scan := textinput.New()
	scan.Placeholder = "Leia o código da localização"
	scan.CharLimit = 64
	scan.Focus()

	return &App{
		controller: controller,
		resolver:   resolver,
		submitter:  submitter,
		service:    service,
		scan:       scan,
		debounce:   debounce,
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.scan.Width = max(20, msg.Width-8)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case debounceMsg:
		// Só o tick da última digitação vale; os demais expiram em silêncio.
		if msg.gen != a.debGen {
			return a, nil
		}
		return a, a.dispatchScan()

	case locationResultMsg:
		efeitos := a.controller.ApplyLocationResult(msg.seq, msg.sessao, msg.estoque, msg.err)
		return a, a.runEffects(efeitos)

	case productResultMsg:
		efeitos := a.controller.ApplyProductResult(msg.seq, msg.ev, msg.err)
		return a, a.runEffects(efeitos)

	case submitResultMsg:
		efeitos := a.controller.ApplySubmitResult(msg.recibo, msg.err)
		return a, a.runEffects(efeitos)

	case closeDoneMsg:
		if msg.err != nil {
			a.statusMsg = "Falha ao fechar a localização no serviço"
			a.statusErro = true
		}
		return a, nil
	}

	return a, a.updateScanField(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Sair com coleta em andamento exige confirmação explícita.
	if a.confirmaSaida {
		switch msg.String() {
		case "s", "S", "enter":
			a.confirmaSaida = false
			return a, a.runEffects(a.controller.Cancel())
		case "n", "N", "esc":
			a.confirmaSaida = false
			return a, a.scan.Focus()
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.controller.State() == workflow.StateConfirming {
		switch msg.String() {
		case "s", "S", "enter":
			linhas, _ := a.controller.Confirm()
			if linhas == nil {
				return a, nil
			}
			return a, a.submitCmd(linhas)
		case "n", "N", "esc":
			return a, a.runEffects(a.controller.Decline())
		case "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg.String() {
	case "ctrl+c":
		efeitos := a.controller.Cancel()
		return a, tea.Sequence(a.runEffects(efeitos), tea.Quit)

	case "esc":
		if a.controller.State() != workflow.StateIdle {
			a.confirmaSaida = true
		}
		return a, nil

	case "enter":
		// Enter confirma a leitura na hora, sem esperar o debounce.
		a.debGen++
		return a, a.dispatchScan()

	case "f2", "ctrl+s":
		return a, a.runEffects(a.controller.RequestSave())

	case "up":
		if a.selecionada > 0 {
			a.selecionada--
		}
		return a, nil

	case "down":
		if a.selecionada < len(a.controller.Linhas())-1 {
			a.selecionada++
		}
		return a, nil

	case "delete", "ctrl+d":
		efeitos := a.controller.RemoveLine(a.selecionada)
		if n := len(a.controller.Linhas()); a.selecionada >= n && n > 0 {
			a.selecionada = n - 1
		}
		return a, a.runEffects(efeitos)
	}

	return a, a.updateScanField(msg)
}

// updateScanField repassa a mensagem ao campo de leitura e agenda o debounce
// quando o texto muda. Leitores de código de barras digitam rápido e terminam
// com Enter; o debounce cobre digitação manual.
func (a *App) updateScanField(msg tea.Msg) tea.Cmd {
	antes := a.scan.Value()
	var cmd tea.Cmd
	a.scan, cmd = a.scan.Update(msg)
	if a.scan.Value() == antes || strings.TrimSpace(a.scan.Value()) == "" {
		return cmd
	}
	a.debGen++
	gen := a.debGen
	return tea.Batch(cmd, tea.Tick(a.debounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	}))
}

// dispatchScan resolve o código corrente conforme o estado: localização em
// Idle, produto com localização aberta.
func (a *App) dispatchScan() tea.Cmd {
	codigo := strings.TrimSpace(a.scan.Value())
	if codigo == "" {
		return nil
	}
	a.scan.Reset()

	seq := a.controller.IssueResolution()
	switch a.controller.State() {
	case workflow.StateIdle:
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			sessao, estoque, err := a.resolver.ResolveLocation(ctx, codigo)
			return locationResultMsg{seq: seq, sessao: sessao, estoque: estoque, err: err}
		}
	case workflow.StateLocationOpen:
		estoque := a.controller.Estoque()
		operacao := a.controller.Operacao()
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			ev, err := a.resolver.ResolveProduct(ctx, codigo, estoque, operacao)
			return productResultMsg{seq: seq, ev: ev, err: err}
		}
	}
	return nil
}

func (a *App) submitCmd(linhas []workflow.GroupedLine) tea.Cmd {
	sessao := *a.controller.Sessao()
	operacao := a.controller.Operacao()
	operadorID := a.controller.Operador().ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		recibo, err := a.submitter.Submit(ctx, sessao, operacao, operadorID, linhas)
		return submitResultMsg{recibo: recibo, err: err}
	}
}

// runEffects cumpre a fatia de efeitos devolvida pelo controlador.
func (a *App) runEffects(efeitos []workflow.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, ef := range efeitos {
		switch ef := ef.(type) {
		case workflow.EffectAlert:
			a.statusMsg = ef.Mensagem
			a.statusErro = ef.Erro
		case workflow.EffectScrollToEnd:
			a.selecionada = max(0, len(a.controller.Linhas())-1)
		case workflow.EffectFocusScan:
			a.scan.Reset()
			cmds = append(cmds, a.scan.Focus())
		case workflow.EffectCloseLocation:
			id := ef.LocalizacaoID
			cmds = append(cmds, func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
				defer cancel()
				return closeDoneMsg{err: a.service.FecharLocalizacao(ctx, id)}
			})
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) View() string {
	if a.confirmaSaida {
		return moldura.Render(
			tituloStyle.Render("Cancelar a coleta?") + "\n\n" +
				avisoStyle.Render("As leituras serão descartadas e a localização liberada.") + "\n\n" +
				avisoStyle.Render("S cancelar · N continuar"))
	}
	if a.controller.State() == workflow.StateConfirming {
		return a.viewConfirmacao()
	}

	var b strings.Builder
	op := a.controller.Operador()
	b.WriteString(tituloStyle.Render(fmt.Sprintf("COLETOR · %s", strings.ToUpper(a.controller.Operacao()))))
	b.WriteString(avisoStyle.Render(fmt.Sprintf("  operador: %s", op.Nome)))
	b.WriteString("\n\n")

	if sessao := a.controller.Sessao(); sessao != nil {
		b.WriteString(sessaoStyle.Render(fmt.Sprintf("Localização: %s", sessao.Nome)))
		b.WriteString("\n")
		a.scan.Placeholder = "Leia o código do produto"
	} else {
		b.WriteString(avisoStyle.Render("Nenhuma localização aberta"))
		b.WriteString("\n")
		a.scan.Placeholder = "Leia o código da localização"
	}

	b.WriteString(moldura.Render(a.scan.View()))
	b.WriteString("\n\n")
	b.WriteString(a.viewLinhas())
	b.WriteString("\n")

	if a.statusMsg != "" {
		style := avisoStyle
		if a.statusErro {
			style = erroStyle
		}
		b.WriteString(style.Render(a.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(avisoStyle.Render("F2 salvar · Delete remover linha · Esc cancelar · Ctrl+C sair"))
	return b.String()
}

func (a *App) viewLinhas() string {
	linhas := a.controller.Linhas()
	if len(linhas) == 0 {
		return avisoStyle.Render("Sem leituras")
	}
	var rows []string
	for i, linha := range linhas {
		texto := fmt.Sprintf("%dx  %s  %s", linha.Qtde, linha.Evento.SKU, linha.Evento.Descricao)
		if i == a.selecionada {
			texto = linhaSelStyle.Render("> " + texto)
		} else {
			texto = "  " + texto
		}
		rows = append(rows, texto)
	}
	total := avisoStyle.Render(fmt.Sprintf("%d leitura(s) em %d linha(s)", a.controller.TotalLeituras(), len(linhas)))
	return strings.Join(rows, "\n") + "\n" + total
}

func (a *App) viewConfirmacao() string {
	linhas := a.controller.Linhas()
	var b strings.Builder
	b.WriteString(tituloStyle.Render("Confirmar envio?"))
	b.WriteString("\n\n")
	for _, linha := range linhas {
		b.WriteString(fmt.Sprintf("  %dx  %s  %s\n", linha.Qtde, linha.Evento.SKU, linha.Evento.Descricao))
	}
	b.WriteString("\n")
	b.WriteString(avisoStyle.Render("S confirmar · N voltar"))
	return moldura.Render(b.String())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
