// Package cache guarda resultados de consultas por código de barras durante
// uma sessão de coleta. O cache pertence ao controlador do fluxo e é
// descartado junto com ele; não há estado global de pacote.
package cache

import (
	"sync"
	"time"
)

// Kind distingue o tipo de entrada no cache (um mesmo EAN pode identificar
// produto e localização em bases legadas).
type Kind string

const (
	KindLocalizacao Kind = "localizacao"
	KindProduto     Kind = "produto"
)

type key struct {
	kind Kind
	code string
}

type entry struct {
	value      any
	insertedAt time.Time
}

// Lookup é um cache chave-valor com expiração agendada por entrada.
// A remoção acontece apenas pelo callback agendado em Set ou por Clear;
// Get não verifica validade (o TTL limita o crescimento por si só, aceitável
// para a sessão de um único operador).
type Lookup struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[key]entry
	timers  []*time.Timer
}

// NewLookup cria o cache com o TTL fixo dado. TTL zero desabilita a expiração
// (cache com escopo de sessão, limpo apenas por Clear).
func NewLookup(ttl time.Duration) *Lookup {
	return &Lookup{
		ttl:     ttl,
		entries: make(map[key]entry),
	}
}

// Get devolve o valor em cache para o código, se presente.
func (c *Lookup) Get(kind Kind, code string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key{kind, code}]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set grava o valor e agenda a remoção após o TTL.
func (c *Lookup) Set(kind Kind, code string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key{kind, code}
	c.entries[k] = entry{value: value, insertedAt: time.Now()}
	if c.ttl > 0 {
		t := time.AfterFunc(c.ttl, func() {
			c.mu.Lock()
			delete(c.entries, k)
			c.mu.Unlock()
		})
		c.timers = append(c.timers, t)
	}
}

// Len devolve o número de entradas vivas.
func (c *Lookup) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear descarta todas as entradas e cancela as expirações pendentes.
func (c *Lookup) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.timers {
		t.Stop()
	}
	c.timers = nil
	c.entries = make(map[key]entry)
}
