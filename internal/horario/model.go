package horario

import (
	"time"

	"gorm.io/gorm"
)

// Horario representa um slot semanal de aula de uma turma.
// Não há validação de sobreposição entre horários da mesma turma.
type Horario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	TurmaID    uint   `gorm:"not null;index" json:"turmaId"`
	DiaSemana  string `gorm:"size:20;not null" json:"diaSemana"`
	HoraInicio string `gorm:"size:5;not null" json:"horaInicio"`
	HoraFim    string `gorm:"size:5;not null" json:"horaFim"`
}
