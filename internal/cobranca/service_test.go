package cobranca

import (
	"strings"
	"testing"

	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/pixconfig"
)

func TestMontar_FluxoCompleto(t *testing.T) {
	pend := pagamento.ResumoPendencias{
		Quantidade: 2,
		Meses:      []string{"2024-03", "2024-02"},
		ValorTotal: 300,
	}
	cfg := pixconfig.Config{
		PixChave:         "foo@bar.com",
		PixNome:          "João",
		MensagemTemplate: pixconfig.TemplatePadrao,
	}

	c := Montar("Isabella Costa", "(27) 99222-3333", pend, cfg)

	if c.Estado != EstadoPronto {
		t.Fatalf("Estado = %q, want %q", c.Estado, EstadoPronto)
	}
	if c.Telefone != "5527992223333" {
		t.Errorf("Telefone = %q, want %q", c.Telefone, "5527992223333")
	}
	if !strings.Contains(c.Mensagem, "2024-03, 2024-02") {
		t.Errorf("meses fora da ordem decrescente: %q", c.Mensagem)
	}
	if !strings.Contains(c.Mensagem, "R$ 300,00") {
		t.Errorf("valor total não formatado: %q", c.Mensagem)
	}
	if !strings.Contains(c.Mensagem, "foo@bar.com") || !strings.Contains(c.Mensagem, "João") {
		t.Errorf("chave ou nome do PIX não substituídos: %q", c.Mensagem)
	}
	for _, token := range []string{"{aluno}", "{aluna}", "{responsavel}", "{meses}", "{valor}", "{pixChave}", "{pixNome}", "{pixBanco}"} {
		if strings.Contains(c.Mensagem, token) {
			t.Errorf("placeholder %s não resolvido: %q", token, c.Mensagem)
		}
	}
	if !strings.HasPrefix(c.Link, "https://wa.me/5527992223333?text=") {
		t.Errorf("Link = %q", c.Link)
	}
}

func TestMontar_BancoVazioNaoDeixaBuraco(t *testing.T) {
	cfg := pixconfig.Config{PixChave: "chave", PixNome: "Nome", MensagemTemplate: pixconfig.TemplatePadrao}

	c := Montar("Sofia", "(27) 99111-2222", pagamento.ResumoPendencias{}, cfg)

	if strings.Contains(c.Mensagem, "\n\n\n") {
		t.Errorf("quebras de linha não colapsadas: %q", c.Mensagem)
	}
	if strings.HasSuffix(c.Mensagem, "\n") {
		t.Errorf("mensagem não aparada: %q", c.Mensagem)
	}
	if strings.Contains(c.Mensagem, "Banco:") {
		t.Errorf("banco vazio não deveria aparecer: %q", c.Mensagem)
	}
}

func TestMontar_BancoPreenchido(t *testing.T) {
	cfg := pixconfig.Config{PixChave: "chave", PixNome: "Nome", PixBanco: "Banco do Brasil"}

	c := Montar("Sofia", "(27) 99111-2222", pagamento.ResumoPendencias{}, cfg)

	if !strings.Contains(c.Mensagem, "Banco: Banco do Brasil") {
		t.Errorf("banco deveria aparecer com rótulo, got %q", c.Mensagem)
	}
}

func TestMontar_PixIncompleto(t *testing.T) {
	c := Montar("Sofia", "(27) 99111-2222", pagamento.ResumoPendencias{}, pixconfig.Config{PixNome: "só nome"})

	if c.Estado != EstadoPixIncompleto {
		t.Errorf("Estado = %q, want %q", c.Estado, EstadoPixIncompleto)
	}
	if c.Link != "" {
		t.Errorf("link não deveria ser oferecido, got %q", c.Link)
	}
}

func TestMontar_SemTelefone(t *testing.T) {
	cfg := pixconfig.Config{PixChave: "chave", PixNome: "Nome"}

	c := Montar("Sofia", "", pagamento.ResumoPendencias{}, cfg)

	if c.Estado != EstadoSemTelefone {
		t.Errorf("Estado = %q, want %q", c.Estado, EstadoSemTelefone)
	}
	if c.Link != "" {
		t.Errorf("link não deveria ser oferecido, got %q", c.Link)
	}
}

func TestMontar_SemPendenciasUsaFallbacks(t *testing.T) {
	cfg := pixconfig.Config{PixChave: "chave", PixNome: "Nome"}

	c := Montar("", "(27) 99111-2222", pagamento.ResumoPendencias{Meses: []string{}}, cfg)

	if c.Aluna != "Aluno" {
		t.Errorf("nome vazio deveria virar %q, got %q", "Aluno", c.Aluna)
	}
	if !strings.Contains(c.Mensagem, "mês(es) pendente(s)") {
		t.Errorf("lista vazia de meses deveria usar o texto genérico: %q", c.Mensagem)
	}
	if !strings.Contains(c.Mensagem, "R$ 0,00") {
		t.Errorf("valor zerado deveria sair formatado: %q", c.Mensagem)
	}
}
