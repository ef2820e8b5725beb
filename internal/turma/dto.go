package turma

// DTO com os dados da turma mais o total de alunas ativas, usado na listagem.
type ResumoTurmaDTO struct {
	ID           uint    `json:"id"`
	PoloID       uint    `json:"poloId"`
	LocalID      uint    `json:"localId"`
	Nome         string  `json:"nome"`
	Nivel        string  `json:"nivel"`
	Mensalidade  float64 `json:"mensalidade"`
	IdadeAlvo    string  `json:"idadeAlvo"`
	TotalAlunas  int64   `json:"totalAlunas"`
	TotalHorario int     `json:"totalHorarios"`
}

// MontarResumoTurmaDTO monta o resumo a partir da turma carregada e da contagem de alunas.
func MontarResumoTurmaDTO(t Turma, totalAlunas int64) ResumoTurmaDTO {
	return ResumoTurmaDTO{
		ID:           t.ID,
		PoloID:       t.PoloID,
		LocalID:      t.LocalID,
		Nome:         t.Nome,
		Nivel:        t.Nivel,
		Mensalidade:  t.Mensalidade,
		IdadeAlvo:    t.IdadeAlvo,
		TotalAlunas:  totalAlunas,
		TotalHorario: len(t.Horarios),
	}
}
