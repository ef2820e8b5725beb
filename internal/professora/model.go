package professora

import (
	"time"

	"gorm.io/gorm"
)

// Professora representa uma professora da rede, que pode atender mais de uma turma.
type Professora struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome     string `gorm:"size:120;not null" json:"nome"`
	Email    string `gorm:"size:120" json:"email"`
	Telefone string `gorm:"size:30" json:"telefone"`
}
