package dashboard

import "github.com/ECGinastica/api-gestao/internal/pagamento"

// ResumoFinanceiroDTO agrega os pagamentos de alunas de um mês de referência.
type ResumoFinanceiroDTO struct {
	MesReferencia   string  `json:"mesReferencia"`
	TotalEsperado   float64 `json:"totalEsperado"`
	TotalRecebido   float64 `json:"totalRecebido"`
	TotalPendente   float64 `json:"totalPendente"`
	AlunasPendentes int     `json:"alunasPendentes"`
}

// ResumoGeralDTO é a carga do dashboard: contagens gerais mais o financeiro do mês.
type ResumoGeralDTO struct {
	TotalPolos       int64 `json:"totalPolos"`
	TotalLocais      int64 `json:"totalLocais"`
	TotalTurmas      int64 `json:"totalTurmas"`
	TotalAlunas      int64 `json:"totalAlunas"`
	TotalProfessoras int64 `json:"totalProfessoras"`

	Financeiro ResumoFinanceiroDTO `json:"financeiro"`
}

// MontarResumoFinanceiroDTO percorre os pagamentos do mês e monta os totais.
// Alunas distintas com pelo menos uma pendência entram em AlunasPendentes.
func MontarResumoFinanceiroDTO(mesReferencia string, pagamentos []pagamento.PagamentoAluna) ResumoFinanceiroDTO {
	resumo := ResumoFinanceiroDTO{MesReferencia: mesReferencia}

	pendentes := map[uint]bool{}
	for _, p := range pagamentos {
		if p.MesReferencia != mesReferencia {
			continue
		}
		resumo.TotalEsperado += p.Valor
		if p.Status == pagamento.StatusPago {
			resumo.TotalRecebido += p.Valor
		} else {
			pendentes[p.AlunaID] = true
		}
	}

	resumo.TotalPendente = resumo.TotalEsperado - resumo.TotalRecebido
	resumo.AlunasPendentes = len(pendentes)
	return resumo
}
