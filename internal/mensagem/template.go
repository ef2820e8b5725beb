// Package mensagem preenche templates de texto livre usados nas mensagens de
// cobrança. Os placeholders têm a forma {nome}; chaves desconhecidas ficam no
// texto como estão.
package mensagem

import (
	"strings"
)

// PreencherTemplate substitui, em uma única passada, cada token {identificador}
// pelo valor correspondente em vars. Token sem entrada em vars permanece
// literal, inclusive chaves soltas ou malformadas. Texto fora de tokens nunca
// é alterado.
func PreencherTemplate(template string, vars map[string]string) string {
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); {
		c := template[i]
		if c != '{' {
			b.WriteByte(c)
			i++
			continue
		}

		// lê o identificador logo após a chave
		j := i + 1
		for j < len(template) && ehCaractereDeIdentificador(template[j]) {
			j++
		}

		if j > i+1 && j < len(template) && template[j] == '}' {
			nome := template[i+1 : j]
			if valor, ok := vars[nome]; ok {
				b.WriteString(valor)
				i = j + 1
				continue
			}
		}

		// chave sem token reconhecido: a abertura fica literal e a varredura
		// segue do próximo byte, para não engolir um token aninhado
		b.WriteByte('{')
		i++
	}

	return b.String()
}

func ehCaractereDeIdentificador(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}

// NormalizarMensagem colapsa sequências de três ou mais quebras de linha em
// exatamente duas e remove espaços em branco das pontas, para que campos
// opcionais vazios (ex.: banco) não deixem buracos na mensagem.
func NormalizarMensagem(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	quebras := 0
	for _, r := range s {
		if r == '\n' {
			quebras++
			if quebras > 2 {
				continue
			}
		} else {
			quebras = 0
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}
