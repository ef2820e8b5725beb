package aluna

import (
	"testing"

	"github.com/ECGinastica/api-gestao/internal/pagamento"
)

func TestPagamentosDoMes(t *testing.T) {
	override := 120.0
	alunas := []Aluna{
		{ID: 1, Nome: "Sofia", TurmaID: 1, Status: StatusAtiva},
		{ID: 2, Nome: "Isabella", TurmaID: 1, Status: StatusAtiva},
		{ID: 3, Nome: "Laura", TurmaID: 2, Status: StatusTrancada},
		{ID: 4, Nome: "Helena", TurmaID: 2, Status: StatusAtiva, MensalidadeOverride: &override},
	}
	jaLancadas := map[uint]bool{2: true}
	mensalidades := map[uint]float64{1: 150, 2: 180}

	novos := PagamentosDoMes(alunas, jaLancadas, mensalidades, "2024-04")

	if len(novos) != 2 {
		t.Fatalf("esperava 2 lançamentos, veio %d", len(novos))
	}

	// Sofia: mensalidade base da turma.
	if novos[0].AlunaID != 1 || novos[0].Valor != 150 {
		t.Errorf("lançamento da aluna 1 errado: %+v", novos[0])
	}
	// Helena: o valor negociado vence a base da turma.
	if novos[1].AlunaID != 4 || novos[1].Valor != 120 {
		t.Errorf("lançamento da aluna 4 errado: %+v", novos[1])
	}

	for _, p := range novos {
		if p.MesReferencia != "2024-04" {
			t.Errorf("mesReferencia errado: %q", p.MesReferencia)
		}
		if p.Status != pagamento.StatusPendente {
			t.Errorf("lançamento gerado deve nascer pendente, veio %q", p.Status)
		}
		if p.DataPagamento != nil {
			t.Errorf("lançamento pendente não pode ter dataPagamento")
		}
	}
}

func TestPagamentosDoMesSemAlunasNovas(t *testing.T) {
	alunas := []Aluna{{ID: 1, TurmaID: 1, Status: StatusAtiva}}
	novos := PagamentosDoMes(alunas, map[uint]bool{1: true}, map[uint]float64{1: 150}, "2024-04")
	if len(novos) != 0 {
		t.Errorf("mês já lançado não gera nada, veio %d", len(novos))
	}
}

func TestPagamentosDoMesTurmaInexistente(t *testing.T) {
	// Turma fora do mapa entra com mensalidade zero, como na listagem.
	alunas := []Aluna{{ID: 1, TurmaID: 99, Status: StatusAtiva}}
	novos := PagamentosDoMes(alunas, nil, map[uint]float64{}, "2024-04")
	if len(novos) != 1 || novos[0].Valor != 0 {
		t.Errorf("esperava um lançamento com valor zero, veio %+v", novos)
	}
}
