package workflow

// Effect é uma ordem emitida pelo controlador para a camada de apresentação
// ou para o serviço. O controlador nunca executa nada sozinho; quem recebe a
// fatia de efeitos decide como cumpri-los.
type Effect interface{ isEffect() }

// EffectAlert pede a exibição de uma mensagem ao operador.
type EffectAlert struct {
	Mensagem string
	Erro     bool
}

// EffectScrollToEnd pede que a lista de leituras role até a última linha.
type EffectScrollToEnd struct{}

// EffectFocusScan pede que o foco volte ao campo de leitura.
type EffectFocusScan struct{}

// EffectCloseLocation pede o fechamento (unlock) da localização no serviço.
// Emitido tanto após salvar quanto ao cancelar com localização aberta.
type EffectCloseLocation struct {
	LocalizacaoID int64
	EAN           string
}

func (EffectAlert) isEffect()         {}
func (EffectScrollToEnd) isEffect()   {}
func (EffectFocusScan) isEffect()     {}
func (EffectCloseLocation) isEffect() {}
