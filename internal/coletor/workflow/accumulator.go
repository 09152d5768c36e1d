package workflow

// Accumulator é a lista ordenada e mutável de leituras de produto da
// localização aberta. Pertence exclusivamente ao controlador durante uma
// sessão; vive e morre com ela.
type Accumulator struct {
	eventos []ScanEvent
}

// NewAccumulator cria um acumulador vazio.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Append adiciona o evento ao fim da sequência.
func (a *Accumulator) Append(ev ScanEvent) {
	a.eventos = append(a.eventos, ev)
}

// RemoveAt remove o evento na posição dada. Índice fora do intervalo é
// silenciosamente ignorado (a confirmação acontece antes, na UI).
func (a *Accumulator) RemoveAt(index int) {
	if index < 0 || index >= len(a.eventos) {
		return
	}
	a.eventos = append(a.eventos[:index], a.eventos[index+1:]...)
}

// Len devolve o número de leituras acumuladas.
func (a *Accumulator) Len() int {
	return len(a.eventos)
}

// Eventos devolve uma cópia da sequência, na ordem de leitura.
func (a *Accumulator) Eventos() []ScanEvent {
	out := make([]ScanEvent, len(a.eventos))
	copy(out, a.eventos)
	return out
}

// Reset descarta todas as leituras.
func (a *Accumulator) Reset() {
	a.eventos = nil
}

// GroupByProduct agrupa as leituras por produto, na ordem da primeira
// ocorrência de cada um. Recomputado a cada chamada; não muta o acumulador.
// A soma das quantidades é sempre igual a Len().
func (a *Accumulator) GroupByProduct() []GroupedLine {
	var lines []GroupedLine
	byProduto := make(map[int64]int) // ProdutoID -> índice em lines
	for i, ev := range a.eventos {
		if pos, ok := byProduto[ev.ProdutoID]; ok {
			lines[pos].Qtde++
			lines[pos].Indices = append(lines[pos].Indices, i)
			continue
		}
		byProduto[ev.ProdutoID] = len(lines)
		lines = append(lines, GroupedLine{
			ProdutoID: ev.ProdutoID,
			Evento:    ev,
			Qtde:      1,
			Indices:   []int{i},
		})
	}
	return lines
}
