// Package seed carrega a base com os cadastros iniciais da rede quando as
// tabelas estão vazias embora o restante da API já esteja de pé.
package seed

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ECGinastica/api-gestao/internal/aluna"
	"github.com/ECGinastica/api-gestao/internal/horario"
	"github.com/ECGinastica/api-gestao/internal/local"
	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/polo"
	"github.com/ECGinastica/api-gestao/internal/professora"
	"github.com/ECGinastica/api-gestao/internal/turma"
	"github.com/ECGinastica/api-gestao/internal/usuario"
	"github.com/ECGinastica/api-gestao/internal/utils"
	"gorm.io/gorm"
)

// Rodar insere os dados iniciais. Só grava quando a tabela de polos está
// vazia, para não duplicar cadastros em reinícios.
func Rodar(db *gorm.DB) error {
	var existentes int64
	if err := db.Model(&polo.Polo{}).Count(&existentes).Error; err != nil {
		return err
	}
	if existentes > 0 {
		return nil
	}

	log.Println("Base vazia, carregando cadastros iniciais")

	return db.Transaction(func(tx *gorm.DB) error {
		polos := []polo.Polo{
			{ID: 1, Nome: "Polo São Mateus", Cidade: "São Mateus"},
			{ID: 2, Nome: "Polo Vitória", Cidade: "Vitória"},
			{ID: 3, Nome: "Polo Linhares", Cidade: "Linhares"},
		}
		if err := tx.Create(&polos).Error; err != nil {
			return err
		}

		locais := []local.Local{
			{ID: 1, PoloID: 1, Nome: "Escola Elesmão", Endereco: "Rua das Flores, 123"},
			{ID: 2, PoloID: 1, Nome: "Ginásio Artístico Municipal", Endereco: "Av. Principal, 456"},
			{ID: 3, PoloID: 2, Nome: "Centro Esportivo Vitória", Endereco: "Rua Central, 789"},
			{ID: 4, PoloID: 3, Nome: "Ginásio Linhares", Endereco: "Av. Beira Mar, 321"},
		}
		if err := tx.Create(&locais).Error; err != nil {
			return err
		}

		professoras := []professora.Professora{
			{ID: 1, Nome: "Mariana Silva", Email: "mariana@ginastica.com", Telefone: "(27) 98765-4321"},
			{ID: 2, Nome: "Carolina Santos", Email: "carolina@ginastica.com", Telefone: "(27) 98888-7777"},
			{ID: 3, Nome: "Juliana Oliveira", Email: "juliana@ginastica.com", Telefone: "(27) 99999-6666"},
		}
		if err := tx.Create(&professoras).Error; err != nil {
			return err
		}

		turmas := []turma.Turma{
			{ID: 1, PoloID: 1, LocalID: 1, Nome: "Iniciante 1", Nivel: "Iniciante 1", Mensalidade: 150, IdadeAlvo: "4-6 anos"},
			{ID: 2, PoloID: 1, LocalID: 1, Nome: "Iniciante 2", Nivel: "Iniciante 2", Mensalidade: 180, IdadeAlvo: "6-8 anos"},
			{ID: 3, PoloID: 1, LocalID: 2, Nome: "Intermediário A", Nivel: "Intermediário", Mensalidade: 220, IdadeAlvo: "8-10 anos"},
			{ID: 4, PoloID: 2, LocalID: 3, Nome: "Avançado", Nivel: "Avançado", Mensalidade: 280, IdadeAlvo: "10-14 anos"},
			{ID: 5, PoloID: 3, LocalID: 4, Nome: "Iniciante 1", Nivel: "Iniciante 1", Mensalidade: 140, IdadeAlvo: "4-6 anos"},
		}
		if err := tx.Create(&turmas).Error; err != nil {
			return err
		}

		vinculos := []map[string]interface{}{
			{"turma_id": 1, "professora_id": 1},
			{"turma_id": 2, "professora_id": 1},
			{"turma_id": 3, "professora_id": 2},
			{"turma_id": 4, "professora_id": 2},
			{"turma_id": 5, "professora_id": 3},
		}
		if err := tx.Table("turma_professoras").Create(vinculos).Error; err != nil {
			return err
		}

		horarios := []horario.Horario{
			{ID: 1, TurmaID: 1, DiaSemana: "Segunda", HoraInicio: "10:00", HoraFim: "11:00"},
			{ID: 2, TurmaID: 1, DiaSemana: "Quarta", HoraInicio: "10:00", HoraFim: "11:00"},
			{ID: 3, TurmaID: 2, DiaSemana: "Terça", HoraInicio: "14:00", HoraFim: "15:30"},
			{ID: 4, TurmaID: 2, DiaSemana: "Quinta", HoraInicio: "14:00", HoraFim: "15:30"},
			{ID: 5, TurmaID: 3, DiaSemana: "Segunda", HoraInicio: "16:00", HoraFim: "17:30"},
			{ID: 6, TurmaID: 3, DiaSemana: "Sexta", HoraInicio: "16:00", HoraFim: "17:30"},
			{ID: 7, TurmaID: 4, DiaSemana: "Terça", HoraInicio: "18:00", HoraFim: "20:00"},
			{ID: 8, TurmaID: 4, DiaSemana: "Quinta", HoraInicio: "18:00", HoraFim: "20:00"},
			{ID: 9, TurmaID: 5, DiaSemana: "Segunda", HoraInicio: "09:00", HoraFim: "10:00"},
			{ID: 10, TurmaID: 5, DiaSemana: "Quarta", HoraInicio: "09:00", HoraFim: "10:00"},
		}
		if err := tx.Create(&horarios).Error; err != nil {
			return err
		}

		alunas := []aluna.Aluna{
			{ID: 1, Nome: "Sofia Rodrigues", Whatsapp: "(27) 99111-2222", Email: "sofia@email.com", DiaPagamento: 5, TurmaID: 1, Status: aluna.StatusAtiva},
			{ID: 2, Nome: "Isabella Costa", Whatsapp: "(27) 99222-3333", Email: "isabella@email.com", DiaPagamento: 10, TurmaID: 1, Status: aluna.StatusAtiva},
			{ID: 3, Nome: "Laura Almeida", Whatsapp: "(27) 99333-4444", Email: "laura@email.com", DiaPagamento: 7, TurmaID: 2, Status: aluna.StatusAtiva},
			{ID: 4, Nome: "Valentina Souza", Whatsapp: "(27) 99444-5555", Email: "valentina@email.com", DiaPagamento: 8, TurmaID: 3, Status: aluna.StatusAtiva},
			{ID: 5, Nome: "Helena Martins", Whatsapp: "(27) 99555-6666", Email: "helena@email.com", DiaPagamento: 12, TurmaID: 1, Status: aluna.StatusAtiva},
			{ID: 6, Nome: "Alice Ferreira", Whatsapp: "(27) 99666-7777", Email: "alice@email.com", DiaPagamento: 15, TurmaID: 4, Status: aluna.StatusAtiva},
			{ID: 7, Nome: "Sophia Lima", Whatsapp: "(27) 99777-8888", Email: "sophia@email.com", DiaPagamento: 25, TurmaID: 5, Status: aluna.StatusAtiva},
			{ID: 8, Nome: "Manuela Santos", Whatsapp: "(27) 99888-9999", Email: "manuela@email.com", DiaPagamento: 22, TurmaID: 2, Status: aluna.StatusAtiva},
		}
		if err := tx.Create(&alunas).Error; err != nil {
			return err
		}

		pagAlunas := pagamentosAlunas()
		if err := tx.Create(&pagAlunas).Error; err != nil {
			return err
		}
		pagProfessoras := pagamentosProfessoras()
		if err := tx.Create(&pagProfessoras).Error; err != nil {
			return err
		}

		if err := criarAdmin(tx); err != nil {
			return err
		}

		return ajustarSequencias(tx)
	})
}

// Tabelas semeadas com IDs explícitos. No Postgres um INSERT com ID explícito
// não avança a sequência do bigserial, então o primeiro POST pós-seed colidiria
// com uma chave já semeada.
var tabelasComIDFixo = []string{"polos", "locais", "professoras", "turmas", "horarios", "alunas"}

func comandoSetval(tabela string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))",
		tabela, tabela,
	)
}

func ajustarSequencias(tx *gorm.DB) error {
	for _, tabela := range tabelasComIDFixo {
		if err := tx.Exec(comandoSetval(tabela)).Error; err != nil {
			return err
		}
	}
	return nil
}

func dataPtr(ano int, mes time.Month, dia int) *time.Time {
	t := time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
	return &t
}

func pagamentosAlunas() []pagamento.PagamentoAluna {
	return []pagamento.PagamentoAluna{
		// Sofia Rodrigues - em dia
		{AlunaID: 1, MesReferencia: "2024-01", Valor: 150, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 5)},
		{AlunaID: 1, MesReferencia: "2024-02", Valor: 150, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 5)},
		{AlunaID: 1, MesReferencia: "2024-03", Valor: 150, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 3, 5)},

		// Isabella Costa - 2 meses pendentes
		{AlunaID: 2, MesReferencia: "2024-01", Valor: 150, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 10)},
		{AlunaID: 2, MesReferencia: "2024-02", Valor: 150, Status: pagamento.StatusPendente},
		{AlunaID: 2, MesReferencia: "2024-03", Valor: 150, Status: pagamento.StatusPendente},

		// Laura Almeida - em dia
		{AlunaID: 3, MesReferencia: "2024-01", Valor: 180, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 7)},
		{AlunaID: 3, MesReferencia: "2024-02", Valor: 180, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 7)},
		{AlunaID: 3, MesReferencia: "2024-03", Valor: 180, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 3, 7)},

		// Valentina Souza - 1 mês pendente
		{AlunaID: 4, MesReferencia: "2024-01", Valor: 220, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 8)},
		{AlunaID: 4, MesReferencia: "2024-02", Valor: 220, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 8)},
		{AlunaID: 4, MesReferencia: "2024-03", Valor: 220, Status: pagamento.StatusPendente},
	}
}

func pagamentosProfessoras() []pagamento.PagamentoProfessora {
	return []pagamento.PagamentoProfessora{
		{ProfessoraID: 1, MesReferencia: "2024-01", Valor: 2500, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 30)},
		{ProfessoraID: 1, MesReferencia: "2024-02", Valor: 2500, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 28)},
		{ProfessoraID: 1, MesReferencia: "2024-03", Valor: 2500, Status: pagamento.StatusPendente},

		{ProfessoraID: 2, MesReferencia: "2024-01", Valor: 3000, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 30)},
		{ProfessoraID: 2, MesReferencia: "2024-02", Valor: 3000, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 28)},
		{ProfessoraID: 2, MesReferencia: "2024-03", Valor: 3000, Status: pagamento.StatusPendente},

		{ProfessoraID: 3, MesReferencia: "2024-01", Valor: 1800, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 1, 30)},
		{ProfessoraID: 3, MesReferencia: "2024-02", Valor: 1800, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 2, 28)},
		{ProfessoraID: 3, MesReferencia: "2024-03", Valor: 1800, Status: pagamento.StatusPago, DataPagamento: dataPtr(2024, 3, 5)},
	}
}

func criarAdmin(tx *gorm.DB) error {
	senha := os.Getenv("ADMIN_SENHA")
	if senha == "" {
		senha = "ginastica123"
	}
	hash, err := utils.HashSenha(senha)
	if err != nil {
		return err
	}
	admin := usuario.Usuario{
		Nome:    "Ana Paula",
		Email:   "ana@ginastica.com",
		Senha:   hash,
		IsAdmin: true,
	}
	return tx.Create(&admin).Error
}
