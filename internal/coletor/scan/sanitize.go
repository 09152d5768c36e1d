// Package scan normaliza códigos de barras lidos pelo coletor antes de
// qualquer consulta: leitores seriais costumam emitir CR/LF e o teclado
// virtual injeta espaços.
package scan

import (
	"strings"
	"unicode"
)

// Sanitize remove espaços em branco e caracteres de controle do código lido.
// Função pura e total: nunca falha, e Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, raw)
}
