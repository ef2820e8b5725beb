package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ECGinastica/api-gestao/internal/aluna"
	"github.com/ECGinastica/api-gestao/internal/turma"
	"github.com/gorilla/mux"
)

// GET /turmas/{id}/resumo — turma com contagem de alunas ativas e horários.
func (h *Handler) ResumoTurma(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	t, err := turma.NewRepository().BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Turma não encontrada", http.StatusNotFound)
		return
	}

	totalAlunas, err := aluna.NewRepository().ContarAtivasPorTurma(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao contar alunas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(turma.MontarResumoTurmaDTO(*t, totalAlunas))
}
