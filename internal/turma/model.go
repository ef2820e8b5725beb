package turma

import (
	"time"

	"github.com/ECGinastica/api-gestao/internal/horario"
	"github.com/ECGinastica/api-gestao/internal/professora"
	"gorm.io/gorm"
)

// Turma representa uma turma de ginástica com nível, mensalidade base e faixa etária.
// A turma pertence a exatamente um local e um polo (referência denormalizada ao polo
// para permitir filtro hierárquico sem join).
type Turma struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PoloID      uint    `gorm:"not null;index" json:"poloId"`
	LocalID     uint    `gorm:"not null;index" json:"localId"`
	Nome        string  `gorm:"size:120;not null" json:"nome"`
	Nivel       string  `gorm:"size:60" json:"nivel"`
	Mensalidade float64 `gorm:"not null;default:0" json:"mensalidade"`
	IdadeAlvo   string  `gorm:"size:30" json:"idadeAlvo"`

	Horarios    []horario.Horario       `gorm:"foreignKey:TurmaID" json:"horarios,omitempty"`
	Professoras []professora.Professora `gorm:"many2many:turma_professoras" json:"professoras,omitempty"`
}
