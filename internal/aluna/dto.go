package aluna

// DTO de listagem: cadastro da aluna mais situação financeira derivada.
type ResumoAlunaDTO struct {
	ID                 uint    `json:"id"`
	Nome               string  `json:"nome"`
	Whatsapp           string  `json:"whatsapp"`
	Email              string  `json:"email"`
	DiaPagamento       int     `json:"diaPagamento"`
	TurmaID            uint    `json:"turmaId"`
	Status             string  `json:"status"`
	MensalidadeEfetiva float64 `json:"mensalidadeEfetiva"`
	MesesPendentes     int64   `json:"mesesPendentes"`
	EmDia              bool    `json:"emDia"`
}

// MontarResumoAlunaDTO monta o resumo a partir do cadastro, da mensalidade da
// turma (zero quando a turma não existe mais) e da contagem de pendências.
func MontarResumoAlunaDTO(a Aluna, mensalidadeTurma float64, pendencias int64) ResumoAlunaDTO {
	return ResumoAlunaDTO{
		ID:                 a.ID,
		Nome:               a.Nome,
		Whatsapp:           a.Whatsapp,
		Email:              a.Email,
		DiaPagamento:       a.DiaPagamento,
		TurmaID:            a.TurmaID,
		Status:             a.Status,
		MensalidadeEfetiva: a.MensalidadeEfetiva(mensalidadeTurma),
		MesesPendentes:     pendencias,
		EmDia:              pendencias == 0,
	}
}
