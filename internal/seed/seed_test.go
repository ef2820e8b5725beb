package seed

import "testing"

// Toda coleção semeada com ID explícito precisa ter a sequência reajustada,
// senão o primeiro INSERT via API reaproveita um ID já ocupado.
func TestTabelasComIDFixoCobremAsColecoesSemeadas(t *testing.T) {
	esperadas := []string{"polos", "locais", "professoras", "turmas", "horarios", "alunas"}

	presentes := make(map[string]bool, len(tabelasComIDFixo))
	for _, tabela := range tabelasComIDFixo {
		presentes[tabela] = true
	}
	for _, tabela := range esperadas {
		if !presentes[tabela] {
			t.Errorf("tabela %q semeada com ID explícito mas fora do ajuste de sequência", tabela)
		}
	}
	if len(tabelasComIDFixo) != len(esperadas) {
		t.Errorf("tabelasComIDFixo tem %d entradas, esperava %d", len(tabelasComIDFixo), len(esperadas))
	}
}

func TestComandoSetval(t *testing.T) {
	got := comandoSetval("polos")
	want := "SELECT setval(pg_get_serial_sequence('polos', 'id'), (SELECT MAX(id) FROM polos))"
	if got != want {
		t.Errorf("comandoSetval(\"polos\")\n got:  %s\n want: %s", got, want)
	}
}
