package pagamento

import "sort"

// ResumoPendencias agrega as mensalidades pendentes de uma única aluna.
type ResumoPendencias struct {
	Quantidade int      `json:"quantidade"`
	Meses      []string `json:"meses"`
	ValorTotal float64  `json:"valorTotal"`
}

// EmDia indica que a aluna não tem nenhuma mensalidade pendente.
func (r ResumoPendencias) EmDia() bool {
	return r.Quantidade == 0
}

// ResolverPendencias percorre os pagamentos informados e devolve, para a aluna,
// a quantidade de pendências, os meses de referência ordenados do mais recente
// para o mais antigo e a soma dos valores. Aluna desconhecida ou sem pendências
// resulta em resumo vazio, nunca em erro.
//
// A ordenação é lexicográfica decrescente sobre "YYYY-MM", que coincide com a
// ordem cronológica decrescente nesse formato.
func ResolverPendencias(alunaID uint, pagamentos []PagamentoAluna) ResumoPendencias {
	resumo := ResumoPendencias{Meses: []string{}}
	for _, p := range pagamentos {
		if p.AlunaID != alunaID || p.Status != StatusPendente {
			continue
		}
		resumo.Quantidade++
		resumo.Meses = append(resumo.Meses, p.MesReferencia)
		resumo.ValorTotal += p.Valor
	}
	sort.Sort(sort.Reverse(sort.StringSlice(resumo.Meses)))
	return resumo
}
