package pixconfig

import (
	"encoding/json"
	"strings"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Armazenamento é o par get/set de chave-valor por trás da configuração.
// A abstração permite trocar o banco por um mapa em memória nos testes.
type Armazenamento interface {
	Get(chave string) (string, error)
	Set(chave, valor string) error
}

/* ========================= Armazenamento em banco ========================= */

// Configuracao é a linha chave→blob JSON na tabela de configurações.
type Configuracao struct {
	Chave string `gorm:"primaryKey;size:120" json:"chave"`
	Valor string `gorm:"type:text" json:"valor"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Configuracao{})
}

type armazenamentoGorm struct {
	DB *gorm.DB
}

func NewArmazenamento(db *gorm.DB) Armazenamento {
	return &armazenamentoGorm{DB: db}
}

func (a *armazenamentoGorm) Get(chave string) (string, error) {
	var cfg Configuracao
	if err := a.DB.First(&cfg, "chave = ?", chave).Error; err != nil {
		return "", err
	}
	return cfg.Valor, nil
}

// Set grava a chave inteira de uma vez; o valor anterior é substituído, nunca mesclado.
func (a *armazenamentoGorm) Set(chave, valor string) error {
	return a.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor"}),
	}).Create(&Configuracao{Chave: chave, Valor: valor}).Error
}

/* ========================= Armazenamento em memória ========================= */

type armazenamentoMemoria struct {
	mu     sync.RWMutex
	dados  map[string]string
	falhar bool
}

// NewArmazenamentoMemoria devolve um armazenamento volátil para testes.
func NewArmazenamentoMemoria() Armazenamento {
	return &armazenamentoMemoria{dados: make(map[string]string)}
}

func (a *armazenamentoMemoria) Get(chave string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.falhar {
		return "", gorm.ErrInvalidDB
	}
	v, ok := a.dados[chave]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return v, nil
}

func (a *armazenamentoMemoria) Set(chave, valor string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.falhar {
		return gorm.ErrInvalidDB
	}
	a.dados[chave] = valor
	return nil
}

/* ================================ Store ================================ */

// Store lê e grava a configuração PIX sobre um Armazenamento qualquer.
type Store struct {
	Armazenamento Armazenamento
}

func NewStore(arm Armazenamento) *Store {
	return &Store{Armazenamento: arm}
}

// Load lê a configuração persistida. Qualquer falha de leitura ou de parse cai
// silenciosamente nos padrões; um blob parcial é completado campo a campo.
func (s *Store) Load() Config {
	padrao := Padrao()

	raw, err := s.Armazenamento.Get(ChaveArmazenamento)
	if err != nil || raw == "" {
		return padrao
	}

	// Ponteiros distinguem "campo ausente" de "campo vazio".
	var parsed struct {
		PixChave         *string `json:"pixChave"`
		PixNome          *string `json:"pixNome"`
		PixBanco         *string `json:"pixBanco"`
		MensagemTemplate *string `json:"mensagemTemplate"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return padrao
	}

	cfg := padrao
	if parsed.PixChave != nil {
		cfg.PixChave = *parsed.PixChave
	}
	if parsed.PixNome != nil {
		cfg.PixNome = *parsed.PixNome
	}
	if parsed.PixBanco != nil {
		cfg.PixBanco = *parsed.PixBanco
	}
	if parsed.MensagemTemplate != nil && *parsed.MensagemTemplate != "" {
		cfg.MensagemTemplate = *parsed.MensagemTemplate
	}
	return cfg
}

// Save apara os campos, devolve o template padrão quando em branco e grava o
// objeto inteiro em uma única escrita, substituindo o valor anterior.
func (s *Store) Save(cfg Config) (Config, error) {
	cfg.PixChave = strings.TrimSpace(cfg.PixChave)
	cfg.PixNome = strings.TrimSpace(cfg.PixNome)
	cfg.PixBanco = strings.TrimSpace(cfg.PixBanco)
	cfg.MensagemTemplate = strings.TrimSpace(cfg.MensagemTemplate)
	if cfg.MensagemTemplate == "" {
		cfg.MensagemTemplate = TemplatePadrao
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return cfg, err
	}
	return cfg, s.Armazenamento.Set(ChaveArmazenamento, string(raw))
}
