package dashboard

import (
	"testing"
	"time"

	"github.com/ECGinastica/api-gestao/internal/pagamento"
)

func TestMontarResumoFinanceiroDTO(t *testing.T) {
	pago := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	pagamentos := []pagamento.PagamentoAluna{
		{AlunaID: 1, MesReferencia: "2024-03", Valor: 150, Status: pagamento.StatusPago, DataPagamento: &pago},
		{AlunaID: 2, MesReferencia: "2024-03", Valor: 150, Status: pagamento.StatusPendente},
		{AlunaID: 3, MesReferencia: "2024-03", Valor: 180, Status: pagamento.StatusPago, DataPagamento: &pago},
		{AlunaID: 4, MesReferencia: "2024-03", Valor: 220, Status: pagamento.StatusPendente},
		// mês diferente não entra nos totais
		{AlunaID: 1, MesReferencia: "2024-02", Valor: 150, Status: pagamento.StatusPendente},
	}

	got := MontarResumoFinanceiroDTO("2024-03", pagamentos)

	if got.TotalEsperado != 700 {
		t.Errorf("TotalEsperado = %v, want 700", got.TotalEsperado)
	}
	if got.TotalRecebido != 330 {
		t.Errorf("TotalRecebido = %v, want 330", got.TotalRecebido)
	}
	if got.TotalPendente != 370 {
		t.Errorf("TotalPendente = %v, want 370", got.TotalPendente)
	}
	if got.AlunasPendentes != 2 {
		t.Errorf("AlunasPendentes = %d, want 2", got.AlunasPendentes)
	}
}

func TestMontarResumoFinanceiroDTO_MesSemPagamentos(t *testing.T) {
	got := MontarResumoFinanceiroDTO("2024-06", nil)

	if got.TotalEsperado != 0 || got.TotalRecebido != 0 || got.TotalPendente != 0 || got.AlunasPendentes != 0 {
		t.Errorf("mês sem pagamentos deveria zerar tudo, got %+v", got)
	}
}
