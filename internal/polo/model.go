package polo

import (
	"time"

	"gorm.io/gorm"
)

// Polo representa um núcleo regional que agrupa um ou mais locais de treino.
type Polo struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome   string `gorm:"size:120;not null" json:"nome"`
	Cidade string `gorm:"size:120" json:"cidade"`
}
