package mensagem

import "testing"

func TestPreencherTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "substituição simples",
			template: "Olá {x}",
			vars:     map[string]string{"x": "A"},
			want:     "Olá A",
		},
		{
			name:     "token sem variável fica literal",
			template: "Hi {y}",
			vars:     map[string]string{},
			want:     "Hi {y}",
		},
		{
			name:     "todas as ocorrências são substituídas",
			template: "{a} e {a} e {a}",
			vars:     map[string]string{"a": "x"},
			want:     "x e x e x",
		},
		{
			name:     "valor vazio apaga o token",
			template: "PIX: {pixChave}{pixBanco}",
			vars:     map[string]string{"pixChave": "foo@bar.com", "pixBanco": ""},
			want:     "PIX: foo@bar.com",
		},
		{
			name:     "texto fora de tokens não muda",
			template: "a {b} c {{d}} e",
			vars:     map[string]string{"b": "B", "d": "D"},
			want:     "a B c {D} e",
		},
		{
			name:     "chave aberta sem fechamento fica literal",
			template: "abc {def",
			vars:     map[string]string{"def": "x"},
			want:     "abc {def",
		},
		{
			name:     "chave aninhada não engole token interno",
			template: "{a{b}",
			vars:     map[string]string{"b": "B"},
			want:     "{aB",
		},
		{
			name:     "chaves vazias ficam literais",
			template: "x {} y",
			vars:     map[string]string{"": "nada"},
			want:     "x {} y",
		},
		{
			name:     "template vazio",
			template: "",
			vars:     map[string]string{"a": "x"},
			want:     "",
		},
		{
			name:     "mensagem de cobrança completa",
			template: "Olá {aluno}, tudo bem?\n\nSua mensalidade está pendente ({meses}).\nValor total: {valor}.\n\nPIX: {pixChave} ({pixNome})\n{pixBanco}",
			vars: map[string]string{
				"aluno":    "Isabella Costa",
				"meses":    "2024-03, 2024-02",
				"valor":    "R$ 300,00",
				"pixChave": "foo@bar.com",
				"pixNome":  "João",
				"pixBanco": "",
			},
			want: "Olá Isabella Costa, tudo bem?\n\nSua mensalidade está pendente (2024-03, 2024-02).\nValor total: R$ 300,00.\n\nPIX: foo@bar.com (João)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreencherTemplate(tt.template, tt.vars); got != tt.want {
				t.Errorf("PreencherTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizarMensagem(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "colapsa três quebras em duas", in: "a\n\n\nb", want: "a\n\nb"},
		{name: "colapsa muitas quebras em duas", in: "a\n\n\n\n\n\nb", want: "a\n\nb"},
		{name: "preserva quebra dupla", in: "a\n\nb", want: "a\n\nb"},
		{name: "apara as pontas", in: "  \n mensagem \n\n ", want: "mensagem"},
		{name: "vazio permanece vazio", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizarMensagem(tt.in); got != tt.want {
				t.Errorf("NormalizarMensagem(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
