// Package whatsapp normaliza telefones brasileiros e monta deep links wa.me
// para o fluxo de cobrança.
package whatsapp

import (
	"net/url"
	"strings"
)

// Código de país do Brasil, exigido pelo wa.me.
const prefixoBrasil = "55"

// NormalizarTelefone remove tudo que não é dígito e garante o prefixo de país.
// Telefone vazio (ou sem nenhum dígito) resulta em string vazia.
func NormalizarTelefone(telefone string) string {
	if telefone == "" {
		return ""
	}

	var digitos strings.Builder
	for _, r := range telefone {
		if r >= '0' && r <= '9' {
			digitos.WriteRune(r)
		}
	}
	numeros := digitos.String()
	if numeros == "" {
		return ""
	}

	if strings.HasPrefix(numeros, prefixoBrasil) {
		return numeros
	}
	return prefixoBrasil + numeros
}

// MontarLink monta o link https://wa.me/<telefone>?text=<mensagem codificada>.
// Telefone vazio resulta em link vazio: o chamador não deve oferecer a ação.
func MontarLink(telefone, mensagem string) string {
	if telefone == "" {
		return ""
	}
	return "https://wa.me/" + telefone + "?text=" + url.QueryEscape(mensagem)
}
