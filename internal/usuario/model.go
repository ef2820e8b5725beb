package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario representa quem acessa o console administrativo.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome    string `gorm:"size:120;not null" json:"nome"`
	Email   string `gorm:"size:120;uniqueIndex" json:"email"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
}
