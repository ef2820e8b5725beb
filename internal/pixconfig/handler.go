package pixconfig

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// GET /configuracoes/pix
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	// Load nunca falha: armazenamento indisponível cai nos padrões.
	cfg := h.Store.Load()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(cfg)
}

// PUT /configuracoes/pix
func (h *Handler) Salvar(w http.ResponseWriter, r *http.Request) {
	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	salva, err := h.Store.Save(cfg)
	if err != nil {
		http.Error(w, "Erro ao salvar configuração", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(salva)
}
