package horario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /turmas/{id}/horarios
func (h *Handler) CriarParaTurma(w http.ResponseWriter, r *http.Request) {
	turmaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	var hr Horario
	if err := json.NewDecoder(r.Body).Decode(&hr); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if hr.DiaSemana == "" || hr.HoraInicio == "" || hr.HoraFim == "" {
		http.Error(w, "diaSemana, horaInicio e horaFim são obrigatórios", http.StatusBadRequest)
		return
	}
	hr.TurmaID = uint(turmaID)
	if err := h.Repository.Salvar(h.DB, &hr); err != nil {
		http.Error(w, "Erro ao salvar horário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(hr)
}

// GET /turmas/{id}/horarios
func (h *Handler) ListarPorTurma(w http.ResponseWriter, r *http.Request) {
	turmaID, _ := strconv.Atoi(mux.Vars(r)["id"])
	horarios, err := h.Repository.ListarPorTurma(h.DB, uint(turmaID))
	if err != nil {
		http.Error(w, "Erro ao listar horários", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(horarios)
}

// PUT /horarios/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var hr Horario
	if err := json.NewDecoder(r.Body).Decode(&hr); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &hr); err != nil {
		http.Error(w, "Erro ao atualizar horário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Horário atualizado com sucesso"})
}

// DELETE /horarios/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir horário", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
