package local

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

// POST /locais
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var l Local
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if l.Nome == "" || l.PoloID == 0 {
		http.Error(w, "nome e poloId são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Salvar(h.DB, &l); err != nil {
		http.Error(w, "Erro ao salvar local", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(l)
}

// GET /locais — aceita ?polo={id} para filtro hierárquico
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	var (
		locais []Local
		err    error
	)
	if q := r.URL.Query().Get("polo"); q != "" {
		poloID, _ := strconv.Atoi(q)
		locais, err = h.Repository.ListarPorPolo(h.DB, uint(poloID))
	} else {
		locais, err = h.Repository.ListarTodos(h.DB)
	}
	if err != nil {
		http.Error(w, "Erro ao listar locais", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(locais)
}

// GET /polos/{id}/locais
func (h *Handler) ListarPorPolo(w http.ResponseWriter, r *http.Request) {
	poloID, _ := strconv.Atoi(mux.Vars(r)["id"])
	locais, err := h.Repository.ListarPorPolo(h.DB, uint(poloID))
	if err != nil {
		http.Error(w, "Erro ao listar locais", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(locais)
}

// GET /locais/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	l, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Local não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(l)
}

// PUT /locais/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var l Local
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &l); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Local não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao atualizar local", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Local atualizado com sucesso"})
}

// DELETE /locais/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao excluir local", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
