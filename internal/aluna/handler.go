package aluna

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/turma"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB            *gorm.DB
	Repository    Repository
	TurmaRepo     turma.Repository
	PagamentoRepo *pagamento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:            db,
		Repository:    NewRepository(),
		TurmaRepo:     turma.NewRepository(),
		PagamentoRepo: pagamento.NewRepository(db),
	}
}

// request DTOs
type transferirRequest struct {
	TurmaID uint `json:"turmaId"`
}

type gerarMensalidadesRequest struct {
	MesReferencia string `json:"mesReferencia"`
}

// POST /alunas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var a Aluna
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if a.Nome == "" || a.TurmaID == 0 {
		http.Error(w, "nome e turmaId são obrigatórios", http.StatusBadRequest)
		return
	}
	if a.DiaPagamento < 1 || a.DiaPagamento > 31 {
		http.Error(w, "diaPagamento deve estar entre 1 e 31", http.StatusBadRequest)
		return
	}
	if a.Status == "" {
		a.Status = StatusAtiva
	}
	if err := h.Repository.Salvar(h.DB, &a); err != nil {
		http.Error(w, "Erro ao salvar aluna", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// GET /alunas — filtros: ?polo= ?local= ?turma= ?status= ?financeiro=emdia|pendente ?busca=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filtro{
		Status: q.Get("status"),
		Busca:  q.Get("busca"),
	}
	if v := q.Get("polo"); v != "" {
		id, _ := strconv.Atoi(v)
		f.PoloID = uint(id)
	}
	if v := q.Get("local"); v != "" {
		id, _ := strconv.Atoi(v)
		f.LocalID = uint(id)
	}
	if v := q.Get("turma"); v != "" {
		id, _ := strconv.Atoi(v)
		f.TurmaID = uint(id)
	}

	alunas, err := h.Repository.Listar(h.DB, f)
	if err != nil {
		http.Error(w, "Erro ao listar alunas", http.StatusInternalServerError)
		return
	}

	pendencias, err := h.PagamentoRepo.ContarPendenciasPorAluna()
	if err != nil {
		http.Error(w, "Erro ao apurar pendências", http.StatusInternalServerError)
		return
	}

	financeiro := q.Get("financeiro")
	resumos := make([]ResumoAlunaDTO, 0, len(alunas))
	for _, a := range alunas {
		total := pendencias[a.ID]
		if financeiro == "emdia" && total > 0 {
			continue
		}
		if financeiro == "pendente" && total == 0 {
			continue
		}

		// Turma apagada não derruba a listagem; mensalidade entra como zero.
		var mensalidadeTurma float64
		if t, err := h.TurmaRepo.BuscarPorID(h.DB, a.TurmaID); err == nil {
			mensalidadeTurma = t.Mensalidade
		}
		resumos = append(resumos, MontarResumoAlunaDTO(a, mensalidadeTurma, total))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumos)
}

// GET /turmas/{id}/alunas
func (h *Handler) ListarPorTurma(w http.ResponseWriter, r *http.Request) {
	turmaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	alunas, err := h.Repository.ListarPorTurma(h.DB, uint(turmaID))
	if err != nil {
		http.Error(w, "Erro ao listar alunas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alunas)
}

// GET /alunas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Aluna não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// PUT /alunas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var a Aluna
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if a.DiaPagamento < 1 || a.DiaPagamento > 31 {
		http.Error(w, "diaPagamento deve estar entre 1 e 31", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &a); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Aluna não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar aluna", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Aluna atualizada com sucesso"})
}

// PUT /alunas/{id}/transferir
func (h *Handler) Transferir(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req transferirRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.TurmaID == 0 {
		http.Error(w, "turmaId é obrigatório", http.StatusBadRequest)
		return
	}
	if _, err := h.TurmaRepo.BuscarPorID(h.DB, req.TurmaID); err != nil {
		http.Error(w, "Turma de destino não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repository.Transferir(h.DB, uint(id), req.TurmaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Aluna não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao transferir aluna", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Aluna transferida com sucesso"})
}

// DELETE /alunas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir aluna", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /pagamentos-alunas/gerar — lança as mensalidades pendentes do mês para
// as alunas ativas que ainda não têm lançamento naquele mês de referência.
func (h *Handler) GerarMensalidades(w http.ResponseWriter, r *http.Request) {
	var req gerarMensalidadesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.MesReferencia == "" {
		http.Error(w, "mesReferencia é obrigatório", http.StatusBadRequest)
		return
	}

	alunas, err := h.Repository.Listar(h.DB, Filtro{Status: StatusAtiva})
	if err != nil {
		http.Error(w, "Erro ao listar alunas", http.StatusInternalServerError)
		return
	}

	existentes, err := h.PagamentoRepo.ListarPorMes(req.MesReferencia)
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos do mês", http.StatusInternalServerError)
		return
	}
	jaLancadas := make(map[uint]bool, len(existentes))
	for _, p := range existentes {
		jaLancadas[p.AlunaID] = true
	}

	mensalidadePorTurma := make(map[uint]float64)
	for _, a := range alunas {
		if _, ok := mensalidadePorTurma[a.TurmaID]; ok {
			continue
		}
		if t, err := h.TurmaRepo.BuscarPorID(h.DB, a.TurmaID); err == nil {
			mensalidadePorTurma[a.TurmaID] = t.Mensalidade
		}
	}

	novos := PagamentosDoMes(alunas, jaLancadas, mensalidadePorTurma, req.MesReferencia)
	if err := h.PagamentoRepo.CriarEmLote(novos); err != nil {
		http.Error(w, "Erro ao gerar mensalidades", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"gerados": len(novos)})
}
