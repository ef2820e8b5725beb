package main

import (
	"log"
	"net/http"
	"os"

	"github.com/ECGinastica/api-gestao/internal/aluna"
	"github.com/ECGinastica/api-gestao/internal/auth"
	"github.com/ECGinastica/api-gestao/internal/cobranca"
	"github.com/ECGinastica/api-gestao/internal/dashboard"
	"github.com/ECGinastica/api-gestao/internal/horario"
	"github.com/ECGinastica/api-gestao/internal/local"
	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/pixconfig"
	"github.com/ECGinastica/api-gestao/internal/polo"
	"github.com/ECGinastica/api-gestao/internal/professora"
	"github.com/ECGinastica/api-gestao/internal/seed"
	"github.com/ECGinastica/api-gestao/internal/turma"
	"github.com/ECGinastica/api-gestao/internal/usuario"
	"github.com/ECGinastica/api-gestao/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	if !auth.SecretConfigurado() {
		log.Fatal("JWT_SECRET não definido")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&polo.Polo{},
		&local.Local{},
		&professora.Professora{},
		&turma.Turma{},
		&horario.Horario{},
		&aluna.Aluna{},
		&pagamento.PagamentoAluna{},
		&pagamento.PagamentoProfessora{},
		&pixconfig.Configuracao{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := seed.Rodar(database); err != nil {
		log.Fatal("Erro ao carregar cadastros iniciais:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	poloHandler := polo.NewHandler(database)
	localHandler := local.NewHandler(database)
	professoraHandler := professora.NewHandler(database)
	turmaHandler := turma.NewHandler(database)
	horarioHandler := horario.NewHandler(database)
	alunaHandler := aluna.NewHandler(database)
	pagamentoHandler := pagamento.NewHandler(pagamento.NewRepository(database))
	pixStore := pixconfig.NewStore(pixconfig.NewArmazenamento(database))
	pixHandler := pixconfig.NewHandler(pixStore)
	cobrancaHandler := cobranca.NewHandler(cobranca.NewService(database, pixStore))
	dashboardHandler := dashboard.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rota de login (livre de autenticação)
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas administrativas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/perfil", usuarioHandler.Perfil).Methods("GET")

	// Rotas de polos
	api.HandleFunc("/polos", poloHandler.Criar).Methods("POST")
	api.HandleFunc("/polos", poloHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/polos/{id}", poloHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/polos/{id}", poloHandler.Atualizar).Methods("PUT")
	api.Handle("/polos/{id}", auth.RequireAdmin(http.HandlerFunc(poloHandler.Deletar))).Methods("DELETE")
	api.HandleFunc("/polos/{id}/locais", localHandler.ListarPorPolo).Methods("GET")

	// Rotas de locais
	api.HandleFunc("/locais", localHandler.Criar).Methods("POST")
	api.HandleFunc("/locais", localHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/locais/{id}", localHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/locais/{id}", localHandler.Atualizar).Methods("PUT")
	api.Handle("/locais/{id}", auth.RequireAdmin(http.HandlerFunc(localHandler.Deletar))).Methods("DELETE")

	// Rotas de professoras
	api.HandleFunc("/professoras", professoraHandler.Criar).Methods("POST")
	api.HandleFunc("/professoras", professoraHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/professoras/{id}", professoraHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/professoras/{id}", professoraHandler.Atualizar).Methods("PUT")
	api.Handle("/professoras/{id}", auth.RequireAdmin(http.HandlerFunc(professoraHandler.Deletar))).Methods("DELETE")
	api.HandleFunc("/professoras/{id}/pagamentos", pagamentoHandler.CriarParaProfessora).Methods("POST")
	api.HandleFunc("/professoras/{id}/pagamentos", pagamentoHandler.ListarPorProfessora).Methods("GET")

	// Rotas de turmas
	api.HandleFunc("/turmas", turmaHandler.Criar).Methods("POST")
	api.HandleFunc("/turmas", turmaHandler.ListarTodos).Methods("GET")
	api.HandleFunc("/turmas/{id}", turmaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/turmas/{id}", turmaHandler.Atualizar).Methods("PUT")
	api.Handle("/turmas/{id}", auth.RequireAdmin(http.HandlerFunc(turmaHandler.Deletar))).Methods("DELETE")
	api.HandleFunc("/turmas/{id}/professoras", turmaHandler.VincularProfessoras).Methods("PUT")
	api.HandleFunc("/turmas/{id}/professoras", professoraHandler.ListarPorTurma).Methods("GET")
	api.HandleFunc("/turmas/{id}/horarios", horarioHandler.CriarParaTurma).Methods("POST")
	api.HandleFunc("/turmas/{id}/horarios", horarioHandler.ListarPorTurma).Methods("GET")
	api.HandleFunc("/turmas/{id}/alunas", alunaHandler.ListarPorTurma).Methods("GET")
	api.HandleFunc("/turmas/{id}/resumo", dashboardHandler.ResumoTurma).Methods("GET")

	// Rotas de horários
	api.HandleFunc("/horarios/{id}", horarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/horarios/{id}", horarioHandler.Deletar).Methods("DELETE")

	// Rotas de alunas
	api.HandleFunc("/alunas", alunaHandler.Criar).Methods("POST")
	api.HandleFunc("/alunas", alunaHandler.Listar).Methods("GET")
	api.HandleFunc("/alunas/{id}", alunaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/alunas/{id}", alunaHandler.Atualizar).Methods("PUT")
	api.Handle("/alunas/{id}", auth.RequireAdmin(http.HandlerFunc(alunaHandler.Deletar))).Methods("DELETE")
	api.HandleFunc("/alunas/{id}/transferir", alunaHandler.Transferir).Methods("PUT")
	api.HandleFunc("/alunas/{id}/pagamentos", pagamentoHandler.CriarParaAluna).Methods("POST")
	api.HandleFunc("/alunas/{id}/pagamentos", pagamentoHandler.ListarPorAluna).Methods("GET")
	api.HandleFunc("/alunas/{id}/pendencias", pagamentoHandler.PendenciasDaAluna).Methods("GET")
	api.HandleFunc("/alunas/{id}/cobranca", cobrancaHandler.MontarParaAluna).Methods("GET")

	// Rotas de pagamentos
	api.HandleFunc("/pagamentos-alunas/gerar", alunaHandler.GerarMensalidades).Methods("POST")
	api.HandleFunc("/pagamentos-alunas/{id}/status", pagamentoHandler.AtualizarStatusAluna).Methods("PUT")
	api.HandleFunc("/pagamentos-alunas/{id}", pagamentoHandler.DeletarPagamentoAluna).Methods("DELETE")
	api.HandleFunc("/pagamentos-professoras/{id}/status", pagamentoHandler.AtualizarStatusProfessora).Methods("PUT")
	api.HandleFunc("/pagamentos-professoras/{id}", pagamentoHandler.DeletarPagamentoProfessora).Methods("DELETE")

	// Configuração PIX usada no botão "Cobrar"
	api.HandleFunc("/configuracoes/pix", pixHandler.Buscar).Methods("GET")
	api.HandleFunc("/configuracoes/pix", pixHandler.Salvar).Methods("PUT")

	// Dashboard
	api.HandleFunc("/dashboard", dashboardHandler.Resumo).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}
