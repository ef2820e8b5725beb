package utils

import "testing"

func TestFormatarMoeda(t *testing.T) {
	tests := []struct {
		name  string
		valor float64
		want  string
	}{
		{name: "zero", valor: 0, want: "R$ 0,00"},
		{name: "inteiro", valor: 300, want: "R$ 300,00"},
		{name: "centavos", valor: 199.9, want: "R$ 199,90"},
		{name: "milhar com separador", valor: 1234.56, want: "R$ 1.234,56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatarMoeda(tt.valor); got != tt.want {
				t.Errorf("FormatarMoeda(%v) = %q, want %q", tt.valor, got, tt.want)
			}
		})
	}
}
