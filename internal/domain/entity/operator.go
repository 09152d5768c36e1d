package entity

import "time"

// Operador é o trabalhador autenticado que executa operações de coleta.
type Operador struct {
	ID        string // UUID
	Nome      string
	Role      string // operador | supervisor
	CreatedAt time.Time
}
