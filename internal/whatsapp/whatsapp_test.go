package whatsapp

import (
	"strings"
	"testing"
)

func TestNormalizarTelefone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "formato brasileiro com máscara", in: "(27) 99999-9999", want: "5527999999999"},
		{name: "já tem prefixo 55", in: "5527999999999", want: "5527999999999"},
		{name: "prefixo 55 com máscara", in: "+55 (27) 99999-9999", want: "5527999999999"},
		{name: "vazio", in: "", want: ""},
		{name: "sem nenhum dígito", in: "sem telefone", want: ""},
		{name: "só dígitos sem prefixo", in: "27999998888", want: "5527999998888"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizarTelefone(tt.in); got != tt.want {
				t.Errorf("NormalizarTelefone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMontarLink(t *testing.T) {
	link := MontarLink("5527999999999", "Olá, tudo bem?")
	if !strings.HasPrefix(link, "https://wa.me/5527999999999?text=") {
		t.Errorf("link com prefixo inesperado: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("mensagem não foi codificada: %q", link)
	}
}

func TestMontarLink_TelefoneVazio(t *testing.T) {
	if link := MontarLink("", "mensagem"); link != "" {
		t.Errorf("telefone vazio deveria produzir link vazio, got %q", link)
	}
}
