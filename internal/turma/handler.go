package turma

import (
	"encoding/json"
	"errors"
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

// request DTO
type vincularProfessorasRequest struct {
	ProfessoraIDs []uint `json:"professoraIds"`
}

// POST /turmas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var t Turma
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if t.Nome == "" || t.PoloID == 0 || t.LocalID == 0 {
		http.Error(w, "nome, poloId e localId são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		http.Error(w, "Erro ao salvar turma", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// GET /turmas — aceita ?polo={id} e ?local={id} para filtro hierárquico
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	var (
		turmas []Turma
		err    error
	)
	switch {
	case r.URL.Query().Get("local") != "":
		localID, _ := strconv.Atoi(r.URL.Query().Get("local"))
		turmas, err = h.Repository.ListarPorLocal(h.DB, uint(localID))
	case r.URL.Query().Get("polo") != "":
		poloID, _ := strconv.Atoi(r.URL.Query().Get("polo"))
		turmas, err = h.Repository.ListarPorPolo(h.DB, uint(poloID))
	default:
		turmas, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar turmas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(turmas)
}

// GET /turmas/{id} — detalhe com horários e professoras
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	t, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Turma não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// PUT /turmas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var t Turma
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Turma não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar turma", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Turma atualizada com sucesso"})
}

// PUT /turmas/{id}/professoras — substitui o conjunto de professoras da turma
func (h *Handler) VincularProfessoras(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req vincularProfessorasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.VincularProfessoras(h.DB, uint(id), req.ProfessoraIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Turma não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao vincular professoras", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Professoras vinculadas com sucesso"})
}

// DELETE /turmas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir turma", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
