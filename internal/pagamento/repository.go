package pagamento

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula o acesso a dados de pagamentos de alunas e professoras.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= Pagamentos de alunas ========================= */

func (r *Repository) CriarPagamentoAluna(p *PagamentoAluna) error {
	return r.DB.Create(p).Error
}

// CriarEmLote cria múltiplos pagamentos de uma vez (ignora se vazio).
func (r *Repository) CriarEmLote(pagamentos []*PagamentoAluna) error {
	if len(pagamentos) == 0 {
		return nil
	}
	return r.DB.Create(pagamentos).Error
}

func (r *Repository) BuscarPagamentoAluna(id uint) (*PagamentoAluna, error) {
	var p PagamentoAluna
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarPorAluna busca todos os pagamentos de uma aluna, mês mais recente primeiro.
func (r *Repository) ListarPorAluna(alunaID uint) ([]PagamentoAluna, error) {
	var pagamentos []PagamentoAluna
	err := r.DB.
		Where("aluna_id = ?", alunaID).
		Order("mes_referencia DESC").
		Find(&pagamentos).Error
	return pagamentos, err
}

// ListarPorMes busca todos os pagamentos de alunas de um mês de referência.
func (r *Repository) ListarPorMes(mesReferencia string) ([]PagamentoAluna, error) {
	var pagamentos []PagamentoAluna
	err := r.DB.
		Where("mes_referencia = ?", mesReferencia).
		Order("aluna_id ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

// PendenciasDaAluna roda a derivação de pendências sobre os pagamentos persistidos.
func (r *Repository) PendenciasDaAluna(alunaID uint) (ResumoPendencias, error) {
	var pagamentos []PagamentoAluna
	err := r.DB.
		Where("aluna_id = ? AND status = ?", alunaID, StatusPendente).
		Find(&pagamentos).Error
	if err != nil {
		return ResumoPendencias{Meses: []string{}}, err
	}
	return ResolverPendencias(alunaID, pagamentos), nil
}

// ContarPendenciasPorAluna devolve um mapa alunaID → quantidade de pendências.
func (r *Repository) ContarPendenciasPorAluna() (map[uint]int64, error) {
	type linha struct {
		AlunaID uint
		Total   int64
	}
	var linhas []linha
	err := r.DB.Model(&PagamentoAluna{}).
		Select("aluna_id, COUNT(*) AS total").
		Where("status = ?", StatusPendente).
		Group("aluna_id").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}
	contagem := make(map[uint]int64, len(linhas))
	for _, l := range linhas {
		contagem[l.AlunaID] = l.Total
	}
	return contagem, nil
}

// AtualizarStatusAluna atualiza o status e ajusta data_pagamento.
// - Se status == "Pago", define data_pagamento = data informada.
// - Caso contrário, zera data_pagamento (NULL).
func (r *Repository) AtualizarStatusAluna(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusPago {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&PagamentoAluna{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repository) DeletarPagamentoAluna(id uint) error {
	res := r.DB.Delete(&PagamentoAluna{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

/* ======================= Pagamentos de professoras ======================= */

func (r *Repository) CriarPagamentoProfessora(p *PagamentoProfessora) error {
	return r.DB.Create(p).Error
}

func (r *Repository) ListarPorProfessora(professoraID uint) ([]PagamentoProfessora, error) {
	var pagamentos []PagamentoProfessora
	err := r.DB.
		Where("professora_id = ?", professoraID).
		Order("mes_referencia DESC").
		Find(&pagamentos).Error
	return pagamentos, err
}

func (r *Repository) AtualizarStatusProfessora(id uint, status string, dataPagamento time.Time) error {
	updates := map[string]interface{}{"status": status}
	if status == StatusPago {
		updates["data_pagamento"] = &dataPagamento
	} else {
		updates["data_pagamento"] = nil
	}
	return r.DB.Model(&PagamentoProfessora{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *Repository) DeletarPagamentoProfessora(id uint) error {
	res := r.DB.Delete(&PagamentoProfessora{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
