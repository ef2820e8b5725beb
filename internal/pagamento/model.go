package pagamento

import (
	"time"

	"gorm.io/gorm"
)

// Status possíveis de um pagamento mensal.
const (
	StatusPendente = "Pendente"
	StatusPago     = "Pago"
)

// PagamentoAluna representa a mensalidade de uma aluna em um mês de referência ("YYYY-MM").
// DataPagamento só é preenchida quando o status é Pago.
type PagamentoAluna struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	AlunaID       uint       `gorm:"not null;index" json:"alunaId"`
	MesReferencia string     `gorm:"size:7;not null;index" json:"mesReferencia"`
	Valor         float64    `gorm:"not null;default:0" json:"valor"`
	Status        string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento *time.Time `json:"dataPagamento"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PagamentoProfessora é o espelho da mensalidade para o salário mensal de uma professora.
type PagamentoProfessora struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ProfessoraID  uint       `gorm:"not null;index" json:"professoraId"`
	MesReferencia string     `gorm:"size:7;not null;index" json:"mesReferencia"`
	Valor         float64    `gorm:"not null;default:0" json:"valor"`
	Status        string     `gorm:"size:50;not null;default:'Pendente';index" json:"status"`
	DataPagamento *time.Time `json:"dataPagamento"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PagamentoAluna{}, &PagamentoProfessora{})
}
