package pixconfig

import (
	"testing"
)

func TestLoad_ArmazenamentoVazio(t *testing.T) {
	store := NewStore(NewArmazenamentoMemoria())

	cfg := store.Load()
	if cfg.PixChave != "" || cfg.PixNome != "" || cfg.PixBanco != "" {
		t.Errorf("campos deveriam estar vazios, got %+v", cfg)
	}
	if cfg.MensagemTemplate != TemplatePadrao {
		t.Errorf("template deveria ser o padrão, got %q", cfg.MensagemTemplate)
	}
}

func TestLoad_BlobCorrompido(t *testing.T) {
	arm := NewArmazenamentoMemoria()
	_ = arm.Set(ChaveArmazenamento, "{isso não é json")
	store := NewStore(arm)

	cfg := store.Load()
	if cfg != Padrao() {
		t.Errorf("blob corrompido deveria cair nos padrões, got %+v", cfg)
	}
}

func TestLoad_ArmazenamentoIndisponivel(t *testing.T) {
	arm := NewArmazenamentoMemoria().(*armazenamentoMemoria)
	arm.falhar = true
	store := NewStore(arm)

	cfg := store.Load()
	if cfg != Padrao() {
		t.Errorf("falha de leitura deveria cair nos padrões, got %+v", cfg)
	}
}

func TestLoad_BlobParcial(t *testing.T) {
	arm := NewArmazenamentoMemoria()
	_ = arm.Set(ChaveArmazenamento, `{"pixChave":"foo@bar.com","campoDesconhecido":1}`)
	store := NewStore(arm)

	cfg := store.Load()
	if cfg.PixChave != "foo@bar.com" {
		t.Errorf("PixChave = %q, want %q", cfg.PixChave, "foo@bar.com")
	}
	if cfg.PixNome != "" || cfg.PixBanco != "" {
		t.Errorf("campos ausentes deveriam ficar vazios, got %+v", cfg)
	}
	if cfg.MensagemTemplate != TemplatePadrao {
		t.Errorf("template ausente deveria ser o padrão, got %q", cfg.MensagemTemplate)
	}
}

func TestSave_AparaCamposELoadDevolveIgual(t *testing.T) {
	store := NewStore(NewArmazenamentoMemoria())

	salva, err := store.Save(Config{
		PixChave:         "  foo@bar.com ",
		PixNome:          " João\n",
		PixBanco:         " Banco do Brasil ",
		MensagemTemplate: " Oi {aluno} ",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	want := Config{
		PixChave:         "foo@bar.com",
		PixNome:          "João",
		PixBanco:         "Banco do Brasil",
		MensagemTemplate: "Oi {aluno}",
	}
	if salva != want {
		t.Errorf("Save() = %+v, want %+v", salva, want)
	}
	if got := store.Load(); got != want {
		t.Errorf("Load() após Save() = %+v, want %+v", got, want)
	}
}

func TestSave_TemplateEmBrancoVoltaAoPadrao(t *testing.T) {
	store := NewStore(NewArmazenamentoMemoria())

	salva, err := store.Save(Config{PixChave: "chave", PixNome: "nome", MensagemTemplate: "   "})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if salva.MensagemTemplate != TemplatePadrao {
		t.Errorf("template em branco deveria voltar ao padrão, got %q", salva.MensagemTemplate)
	}
}

func TestSave_SubstituiValorAnteriorPorInteiro(t *testing.T) {
	store := NewStore(NewArmazenamentoMemoria())

	if _, err := store.Save(Config{PixChave: "antiga", PixNome: "Nome", PixBanco: "Banco X"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := store.Save(Config{PixChave: "nova", PixNome: "Nome"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg := store.Load()
	if cfg.PixChave != "nova" {
		t.Errorf("PixChave = %q, want %q", cfg.PixChave, "nova")
	}
	if cfg.PixBanco != "" {
		t.Errorf("banco da gravação anterior não deveria sobrar, got %q", cfg.PixBanco)
	}
}

func TestCompleta(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{name: "chave e nome preenchidos", cfg: Config{PixChave: "k", PixNome: "n"}, want: true},
		{name: "sem chave", cfg: Config{PixNome: "n"}, want: false},
		{name: "sem nome", cfg: Config{PixChave: "k"}, want: false},
		{name: "vazia", cfg: Config{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Completa(); got != tt.want {
				t.Errorf("Completa() = %v, want %v", got, tt.want)
			}
		})
	}
}
