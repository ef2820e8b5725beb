package auth

import "testing"

func TestSecretConfigurado(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if SecretConfigurado() {
		t.Error("JWT_SECRET vazio deveria reprovar")
	}

	t.Setenv("JWT_SECRET", "segredo-de-teste")
	if !SecretConfigurado() {
		t.Error("JWT_SECRET presente deveria aprovar")
	}
}

func TestGerarEValidarToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GerarToken(7, true)
	if err != nil {
		t.Fatalf("GerarToken: %v", err)
	}

	claims, err := ValidarToken(token)
	if err != nil {
		t.Fatalf("ValidarToken: %v", err)
	}
	if claims.UserID != 7 || !claims.IsAdmin {
		t.Errorf("claims erradas: %+v", claims)
	}
}
