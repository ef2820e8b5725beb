package pagamento

import (
	"reflect"
	"testing"
	"time"
)

func TestResolverPendencias(t *testing.T) {
	pago := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	pagamentos := []PagamentoAluna{
		{ID: 1, AlunaID: 1, MesReferencia: "2024-01", Valor: 150, Status: StatusPago, DataPagamento: &pago},
		{ID: 2, AlunaID: 1, MesReferencia: "2024-02", Valor: 150, Status: StatusPago, DataPagamento: &pago},
		{ID: 3, AlunaID: 2, MesReferencia: "2024-01", Valor: 150, Status: StatusPago, DataPagamento: &pago},
		{ID: 4, AlunaID: 2, MesReferencia: "2024-02", Valor: 150, Status: StatusPendente},
		{ID: 5, AlunaID: 2, MesReferencia: "2024-03", Valor: 150, Status: StatusPendente},
		{ID: 6, AlunaID: 4, MesReferencia: "2024-03", Valor: 220, Status: StatusPendente},
		{ID: 7, AlunaID: 5, MesReferencia: "2023-12", Valor: 180, Status: StatusPendente},
		{ID: 8, AlunaID: 5, MesReferencia: "2024-01", Valor: 180.50, Status: StatusPendente},
	}

	tests := []struct {
		name    string
		alunaID uint
		want    ResumoPendencias
	}{
		{
			name:    "aluna em dia",
			alunaID: 1,
			want:    ResumoPendencias{Quantidade: 0, Meses: []string{}, ValorTotal: 0},
		},
		{
			name:    "duas pendências ordenadas do mês mais recente para o mais antigo",
			alunaID: 2,
			want:    ResumoPendencias{Quantidade: 2, Meses: []string{"2024-03", "2024-02"}, ValorTotal: 300},
		},
		{
			name:    "uma pendência",
			alunaID: 4,
			want:    ResumoPendencias{Quantidade: 1, Meses: []string{"2024-03"}, ValorTotal: 220},
		},
		{
			name:    "pendências cruzando virada de ano",
			alunaID: 5,
			want:    ResumoPendencias{Quantidade: 2, Meses: []string{"2024-01", "2023-12"}, ValorTotal: 360.50},
		},
		{
			name:    "aluna desconhecida não é erro",
			alunaID: 999,
			want:    ResumoPendencias{Quantidade: 0, Meses: []string{}, ValorTotal: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolverPendencias(tt.alunaID, pagamentos)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolverPendencias() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolverPendencias_SemPagamentos(t *testing.T) {
	got := ResolverPendencias(1, nil)
	if !got.EmDia() {
		t.Errorf("aluna sem pagamentos deveria estar em dia, resumo = %+v", got)
	}
	if got.Meses == nil || len(got.Meses) != 0 {
		t.Errorf("Meses deveria ser lista vazia, got %#v", got.Meses)
	}
}

func TestResolverPendencias_SomaIgualAritmetica(t *testing.T) {
	valores := []float64{150, 180, 220, 99.90}
	var pagamentos []PagamentoAluna
	var soma float64
	for i, v := range valores {
		pagamentos = append(pagamentos, PagamentoAluna{
			ID:            uint(i + 1),
			AlunaID:       7,
			MesReferencia: "2024-0" + string(rune('1'+i)),
			Valor:         v,
			Status:        StatusPendente,
		})
		soma += v
	}

	got := ResolverPendencias(7, pagamentos)
	if got.Quantidade != len(valores) {
		t.Errorf("Quantidade = %d, want %d", got.Quantidade, len(valores))
	}
	if len(got.Meses) != len(valores) {
		t.Errorf("len(Meses) = %d, want %d", len(got.Meses), len(valores))
	}
	if got.ValorTotal != soma {
		t.Errorf("ValorTotal = %v, want %v", got.ValorTotal, soma)
	}
}
