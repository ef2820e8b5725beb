package aluna

import (
	"time"

	"gorm.io/gorm"
)

// Status de matrícula de uma aluna.
const (
	StatusAtiva    = "Ativa"
	StatusTrancada = "Trancada"
)

// Aluna representa uma aluna matriculada em uma turma.
type Aluna struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"size:120;not null" json:"nome"`
	Whatsapp string `gorm:"size:30" json:"whatsapp"`
	Email    string `gorm:"size:120" json:"email"`

	// Dia do mês (1–31) em que a mensalidade vence.
	DiaPagamento int  `gorm:"not null;default:5" json:"diaPagamento"`
	TurmaID      uint `gorm:"not null;index" json:"turmaId"`

	// Mensalidade negociada da aluna; quando nula vale a mensalidade da turma.
	MensalidadeOverride *float64 `json:"mensalidadeOverride"`

	Status string `gorm:"size:20;not null;default:'Ativa'" json:"status"`
}

// MensalidadeEfetiva resolve a mensalidade da aluna: o valor negociado quando
// existe, senão a mensalidade base da turma. Turma inexistente entra como zero.
func (a Aluna) MensalidadeEfetiva(mensalidadeTurma float64) float64 {
	if a.MensalidadeOverride != nil {
		return *a.MensalidadeOverride
	}
	return mensalidadeTurma
}
