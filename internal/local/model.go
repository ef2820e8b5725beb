package local

import (
	"time"

	"gorm.io/gorm"
)

// Local representa uma instalação física (escola, ginásio) onde as aulas acontecem.
// Todo local pertence a exatamente um polo.
type Local struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	PoloID   uint   `gorm:"not null;index" json:"poloId"`
	Nome     string `gorm:"size:120;not null" json:"nome"`
	Endereco string `gorm:"size:255" json:"endereco"`
}
