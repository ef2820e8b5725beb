package utils

import (
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var impressoraPtBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatarMoeda formata um valor em reais no padrão brasileiro: "R$ 1.234,56".
func FormatarMoeda(valor float64) string {
	return impressoraPtBR.Sprintf("R$ %v",
		number.Decimal(valor, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// HashSenha retorna o hash bcrypt da senha em texto
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckSenha compara hash bcrypt com a senha em texto e retorna true se bater
func CheckSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}
