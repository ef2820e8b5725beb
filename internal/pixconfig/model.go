package pixconfig

// Chave fixa sob a qual a configuração é persistida. O sufixo versiona o
// formato do blob.
const ChaveArmazenamento = "ecg_pix_config_v1"

// TemplatePadrao é a mensagem de cobrança usada enquanto nenhuma for salva.
const TemplatePadrao = "Olá {aluno}, tudo bem?\n\nSua mensalidade está pendente ({meses}).\nValor total: {valor}.\n\nPIX: {pixChave} ({pixNome})\n{pixBanco}"

// Config guarda a chave PIX da escola e o template da mensagem de cobrança.
// Campos desconhecidos no blob persistido são ignorados na leitura.
type Config struct {
	PixChave         string `json:"pixChave"`
	PixNome          string `json:"pixNome"`
	PixBanco         string `json:"pixBanco,omitempty"`
	MensagemTemplate string `json:"mensagemTemplate"`
}

// Padrao devolve a configuração usada quando nada foi salvo ainda.
func Padrao() Config {
	return Config{MensagemTemplate: TemplatePadrao}
}

// Completa indica se a configuração tem o mínimo para montar uma cobrança.
func (c Config) Completa() bool {
	return c.PixChave != "" && c.PixNome != ""
}
