package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrNotInStock        = errors.New("produto sem estoque na localização aberta")
	ErrValidation        = errors.New("entrada inválida")
	ErrNetwork           = errors.New("falha de comunicação com o serviço")
	ErrSchema            = errors.New("resposta com formato inesperado")
	ErrLockConflict      = errors.New("localização aberta por outro operador")
	ErrUnauthorized      = errors.New("não autorizado")
	ErrForbidden         = errors.New("acesso negado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)
