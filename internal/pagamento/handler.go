package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /alunas/{id}/pagamentos e /professoras/{id}/pagamentos
type PagamentoCreateDTO struct {
	MesReferencia string  `json:"mesReferencia"`
	Valor         float64 `json:"valor"`
	Status        string  `json:"status"` // se vazio, assume "Pendente"
}

// DTO usado no PUT /pagamentos-alunas/{id}/status
type StatusUpdateDTO struct {
	Status        string     `json:"status"`
	DataPagamento *time.Time `json:"dataPagamento"`
}

func validarStatus(status string) bool {
	return status == StatusPendente || status == StatusPago
}

/* ========================= Pagamentos de alunas ========================= */

// POST /alunas/{id}/pagamentos
func (h *Handler) CriarParaAluna(w http.ResponseWriter, r *http.Request) {
	alunaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da aluna inválido", http.StatusBadRequest)
		return
	}

	var in PagamentoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.MesReferencia == "" {
		http.Error(w, "mesReferencia é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Status == "" {
		in.Status = StatusPendente
	}
	if !validarStatus(in.Status) {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	p := &PagamentoAluna{
		AlunaID:       uint(alunaID),
		MesReferencia: in.MesReferencia,
		Valor:         in.Valor,
		Status:        in.Status,
	}
	if in.Status == StatusPago {
		agora := time.Now()
		p.DataPagamento = &agora
	}

	if err := h.Repo.CriarPagamentoAluna(p); err != nil {
		http.Error(w, "Erro ao criar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /alunas/{id}/pagamentos
func (h *Handler) ListarPorAluna(w http.ResponseWriter, r *http.Request) {
	alunaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da aluna inválido", http.StatusBadRequest)
		return
	}

	pagamentos, err := h.Repo.ListarPorAluna(uint(alunaID))
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}

// GET /alunas/{id}/pendencias
func (h *Handler) PendenciasDaAluna(w http.ResponseWriter, r *http.Request) {
	alunaID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da aluna inválido", http.StatusBadRequest)
		return
	}

	resumo, err := h.Repo.PendenciasDaAluna(uint(alunaID))
	if err != nil {
		http.Error(w, "Erro ao buscar pendências", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resumo)
}

// PUT /pagamentos-alunas/{id}/status
func (h *Handler) AtualizarStatusAluna(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}

	var in StatusUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !validarStatus(in.Status) {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.BuscarPagamentoAluna(uint(id)); err != nil {
		http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
		return
	}

	data := time.Now()
	if in.DataPagamento != nil {
		data = *in.DataPagamento
	}
	if err := h.Repo.AtualizarStatusAluna(uint(id), in.Status, data); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"mensagem": "Status atualizado com sucesso"})
}

// DELETE /pagamentos-alunas/{id}
func (h *Handler) DeletarPagamentoAluna(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarPagamentoAluna(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir pagamento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

/* ======================= Pagamentos de professoras ======================= */

// POST /professoras/{id}/pagamentos
func (h *Handler) CriarParaProfessora(w http.ResponseWriter, r *http.Request) {
	professoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da professora inválido", http.StatusBadRequest)
		return
	}

	var in PagamentoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.MesReferencia == "" {
		http.Error(w, "mesReferencia é obrigatório", http.StatusBadRequest)
		return
	}
	if in.Status == "" {
		in.Status = StatusPendente
	}
	if !validarStatus(in.Status) {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	p := &PagamentoProfessora{
		ProfessoraID:  uint(professoraID),
		MesReferencia: in.MesReferencia,
		Valor:         in.Valor,
		Status:        in.Status,
	}
	if in.Status == StatusPago {
		agora := time.Now()
		p.DataPagamento = &agora
	}

	if err := h.Repo.CriarPagamentoProfessora(p); err != nil {
		http.Error(w, "Erro ao criar pagamento", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// GET /professoras/{id}/pagamentos
func (h *Handler) ListarPorProfessora(w http.ResponseWriter, r *http.Request) {
	professoraID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID da professora inválido", http.StatusBadRequest)
		return
	}

	pagamentos, err := h.Repo.ListarPorProfessora(uint(professoraID))
	if err != nil {
		http.Error(w, "Erro ao buscar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagamentos)
}

// PUT /pagamentos-professoras/{id}/status
func (h *Handler) AtualizarStatusProfessora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}

	var in StatusUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !validarStatus(in.Status) {
		http.Error(w, "status inválido", http.StatusBadRequest)
		return
	}

	data := time.Now()
	if in.DataPagamento != nil {
		data = *in.DataPagamento
	}
	if err := h.Repo.AtualizarStatusProfessora(uint(id), in.Status, data); err != nil {
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"mensagem": "Status atualizado com sucesso"})
}

// DELETE /pagamentos-professoras/{id}
func (h *Handler) DeletarPagamentoProfessora(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID do pagamento inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeletarPagamentoProfessora(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Pagamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao excluir pagamento", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
