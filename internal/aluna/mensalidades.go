package aluna

import (
	"github.com/ECGinastica/api-gestao/internal/pagamento"
)

// PagamentosDoMes monta as mensalidades pendentes de um mês de referência para
// as alunas ativas que ainda não têm lançamento naquele mês. O valor de cada
// lançamento é a mensalidade efetiva da aluna sobre a base da sua turma.
func PagamentosDoMes(alunas []Aluna, jaLancadas map[uint]bool, mensalidadePorTurma map[uint]float64, mes string) []*pagamento.PagamentoAluna {
	novos := make([]*pagamento.PagamentoAluna, 0, len(alunas))
	for _, a := range alunas {
		if a.Status != StatusAtiva || jaLancadas[a.ID] {
			continue
		}
		novos = append(novos, &pagamento.PagamentoAluna{
			AlunaID:       a.ID,
			MesReferencia: mes,
			Valor:         a.MensalidadeEfetiva(mensalidadePorTurma[a.TurmaID]),
			Status:        pagamento.StatusPendente,
		})
	}
	return novos
}
