package aluna

import "testing"

func TestMensalidadeEfetiva(t *testing.T) {
	override := 199.90

	tests := []struct {
		name             string
		aluna            Aluna
		mensalidadeTurma float64
		want             float64
	}{
		{name: "sem override usa a mensalidade da turma", aluna: Aluna{}, mensalidadeTurma: 150, want: 150},
		{name: "override prevalece sobre a turma", aluna: Aluna{MensalidadeOverride: &override}, mensalidadeTurma: 150, want: 199.90},
		{name: "turma inexistente vale zero", aluna: Aluna{}, mensalidadeTurma: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.aluna.MensalidadeEfetiva(tt.mensalidadeTurma); got != tt.want {
				t.Errorf("MensalidadeEfetiva() = %v, want %v", got, tt.want)
			}
		})
	}
}
