package aluna

import "gorm.io/gorm"

// Filtro hierárquico da listagem de alunas (polo → local → turma → status).
type Filtro struct {
	PoloID  uint
	LocalID uint
	TurmaID uint
	Status  string
	Busca   string
}

type Repository interface {
	Salvar(db *gorm.DB, a *Aluna) error
	BuscarPorID(db *gorm.DB, id uint) (*Aluna, error)
	Listar(db *gorm.DB, f Filtro) ([]Aluna, error)
	ListarPorTurma(db *gorm.DB, turmaID uint) ([]Aluna, error)
	ContarAtivasPorTurma(db *gorm.DB, turmaID uint) (int64, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Aluna) error
	Transferir(db *gorm.DB, id, novaTurmaID uint) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Aluna) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Aluna, error) {
	var a Aluna
	err := db.First(&a, id).Error
	return &a, err
}

// Listar aplica os filtros hierárquicos; polo e local passam pela turma da aluna.
func (r *repositoryImpl) Listar(db *gorm.DB, f Filtro) ([]Aluna, error) {
	q := db.Model(&Aluna{})

	if f.TurmaID != 0 {
		q = q.Where("alunas.turma_id = ?", f.TurmaID)
	} else if f.LocalID != 0 {
		q = q.Joins("JOIN turmas ON turmas.id = alunas.turma_id").
			Where("turmas.local_id = ?", f.LocalID)
	} else if f.PoloID != 0 {
		q = q.Joins("JOIN turmas ON turmas.id = alunas.turma_id").
			Where("turmas.polo_id = ?", f.PoloID)
	}
	if f.Status != "" {
		q = q.Where("alunas.status = ?", f.Status)
	}
	if f.Busca != "" {
		q = q.Where("alunas.nome ILIKE ?", "%"+f.Busca+"%")
	}

	var alunas []Aluna
	err := q.Order("alunas.nome ASC").Find(&alunas).Error
	return alunas, err
}

func (r *repositoryImpl) ListarPorTurma(db *gorm.DB, turmaID uint) ([]Aluna, error) {
	var alunas []Aluna
	err := db.Where("turma_id = ?", turmaID).Order("nome ASC").Find(&alunas).Error
	return alunas, err
}

func (r *repositoryImpl) ContarAtivasPorTurma(db *gorm.DB, turmaID uint) (int64, error) {
	var total int64
	err := db.Model(&Aluna{}).
		Where("turma_id = ? AND status = ?", turmaID, StatusAtiva).
		Count(&total).Error
	return total, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Aluna) error {
	var existente Aluna
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Whatsapp = novosDados.Whatsapp
	existente.Email = novosDados.Email
	existente.DiaPagamento = novosDados.DiaPagamento
	existente.TurmaID = novosDados.TurmaID
	existente.MensalidadeOverride = novosDados.MensalidadeOverride
	existente.Status = novosDados.Status

	return db.Save(&existente).Error
}

// Transferir move a aluna para outra turma mantendo o restante do cadastro.
func (r *repositoryImpl) Transferir(db *gorm.DB, id, novaTurmaID uint) error {
	res := db.Model(&Aluna{}).
		Where("id = ?", id).
		Update("turma_id", novaTurmaID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Aluna{}, id).Error
}
