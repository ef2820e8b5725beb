package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ECGinastica/api-gestao/internal/aluna"
	"github.com/ECGinastica/api-gestao/internal/local"
	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/polo"
	"github.com/ECGinastica/api-gestao/internal/professora"
	"github.com/ECGinastica/api-gestao/internal/turma"
	"gorm.io/gorm"
)

type Handler struct {
	DB            *gorm.DB
	PagamentoRepo *pagamento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, PagamentoRepo: pagamento.NewRepository(db)}
}

// GET /dashboard — aceita ?mes=YYYY-MM; sem o parâmetro vale o mês corrente.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	mes := r.URL.Query().Get("mes")
	if mes == "" {
		mes = time.Now().Format("2006-01")
	}

	var resumo ResumoGeralDTO
	contagens := []struct {
		campo *int64
		query *gorm.DB
	}{
		{&resumo.TotalPolos, h.DB.Model(&polo.Polo{})},
		{&resumo.TotalLocais, h.DB.Model(&local.Local{})},
		{&resumo.TotalTurmas, h.DB.Model(&turma.Turma{})},
		{&resumo.TotalAlunas, h.DB.Model(&aluna.Aluna{}).Where("status = ?", aluna.StatusAtiva)},
		{&resumo.TotalProfessoras, h.DB.Model(&professora.Professora{})},
	}
	for _, c := range contagens {
		if err := c.query.Count(c.campo).Error; err != nil {
			http.Error(w, "Erro ao montar o dashboard", http.StatusInternalServerError)
			return
		}
	}

	pagamentos, err := h.PagamentoRepo.ListarPorMes(mes)
	if err != nil {
		http.Error(w, "Erro ao apurar o financeiro", http.StatusInternalServerError)
		return
	}
	resumo.Financeiro = MontarResumoFinanceiroDTO(mes, pagamentos)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}
