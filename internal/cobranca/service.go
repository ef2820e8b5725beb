// Package cobranca monta a cobrança de mensalidades via WhatsApp: resolve as
// pendências da aluna, preenche o template configurado com os dados do PIX e
// produz o deep link wa.me pronto para abrir.
package cobranca

import (
	"strings"

	"github.com/ECGinastica/api-gestao/internal/aluna"
	"github.com/ECGinastica/api-gestao/internal/mensagem"
	"github.com/ECGinastica/api-gestao/internal/pagamento"
	"github.com/ECGinastica/api-gestao/internal/pixconfig"
	"github.com/ECGinastica/api-gestao/internal/utils"
	"github.com/ECGinastica/api-gestao/internal/whatsapp"
	"gorm.io/gorm"
)

// Estados possíveis do fluxo de cobrança. Recalculados a cada chamada, nada
// fica persistido.
const (
	EstadoPronto        = "pronto"
	EstadoPixIncompleto = "pix_incompleto"
	EstadoSemTelefone   = "sem_telefone"
)

// Cobranca é o resultado do fluxo para uma aluna.
type Cobranca struct {
	Estado         string   `json:"estado"`
	Aluna          string   `json:"aluna"`
	Telefone       string   `json:"telefone"`
	MesesPendentes []string `json:"mesesPendentes"`
	Quantidade     int      `json:"quantidade"`
	ValorTotal     float64  `json:"valorTotal"`
	ValorFormatado string   `json:"valorFormatado"`
	Mensagem       string   `json:"mensagem"`
	Link           string   `json:"link"`
}

// Montar é a composição pura do fluxo: dado o cadastro resumido da aluna, suas
// pendências e a configuração PIX vigente, devolve a cobrança completa.
// Com o PIX incompleto ou o telefone irresolvível o link sai vazio — a ação de
// envio não deve ser oferecida.
func Montar(nomeAluna, telefone string, pend pagamento.ResumoPendencias, cfg pixconfig.Config) Cobranca {
	nome := nomeAluna
	if nome == "" {
		nome = "Aluno"
	}

	meses := strings.Join(pend.Meses, ", ")
	if meses == "" {
		meses = "mês(es) pendente(s)"
	}

	banco := ""
	if cfg.PixBanco != "" {
		banco = "Banco: " + cfg.PixBanco
	}

	template := cfg.MensagemTemplate
	if template == "" {
		template = pixconfig.TemplatePadrao
	}

	valorFormatado := utils.FormatarMoeda(pend.ValorTotal)
	texto := mensagem.PreencherTemplate(template, map[string]string{
		"aluno":       nome,
		"aluna":       nome,
		"responsavel": nome,
		"meses":       meses,
		"valor":       valorFormatado,
		"pixChave":    cfg.PixChave,
		"pixNome":     cfg.PixNome,
		"pixBanco":    banco,
	})
	texto = mensagem.NormalizarMensagem(texto)

	tel := whatsapp.NormalizarTelefone(telefone)

	c := Cobranca{
		Aluna:          nome,
		Telefone:       tel,
		MesesPendentes: pend.Meses,
		Quantidade:     pend.Quantidade,
		ValorTotal:     pend.ValorTotal,
		ValorFormatado: valorFormatado,
		Mensagem:       texto,
	}

	switch {
	case !cfg.Completa():
		c.Estado = EstadoPixIncompleto
	case tel == "":
		c.Estado = EstadoSemTelefone
	default:
		c.Estado = EstadoPronto
		c.Link = whatsapp.MontarLink(tel, texto)
	}
	return c
}

// Service amarra o fluxo aos dados persistidos.
type Service struct {
	DB            *gorm.DB
	AlunaRepo     aluna.Repository
	PagamentoRepo *pagamento.Repository
	PixStore      *pixconfig.Store
}

func NewService(db *gorm.DB, pixStore *pixconfig.Store) *Service {
	return &Service{
		DB:            db,
		AlunaRepo:     aluna.NewRepository(),
		PagamentoRepo: pagamento.NewRepository(db),
		PixStore:      pixStore,
	}
}

// MontarParaAluna carrega a aluna, as pendências e a configuração e monta a cobrança.
func (s *Service) MontarParaAluna(alunaID uint) (Cobranca, error) {
	a, err := s.AlunaRepo.BuscarPorID(s.DB, alunaID)
	if err != nil {
		return Cobranca{}, err
	}

	pend, err := s.PagamentoRepo.PendenciasDaAluna(alunaID)
	if err != nil {
		return Cobranca{}, err
	}

	cfg := s.PixStore.Load()
	return Montar(a.Nome, a.Whatsapp, pend, cfg), nil
}
