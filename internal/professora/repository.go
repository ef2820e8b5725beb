package professora

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Professora) error
	BuscarPorID(db *gorm.DB, id uint) (*Professora, error)
	ListarTodos(db *gorm.DB) ([]Professora, error)
	ListarPorTurma(db *gorm.DB, turmaID uint) ([]Professora, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Professora) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Professora) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Professora, error) {
	var p Professora
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Professora, error) {
	var professoras []Professora
	err := db.Order("nome ASC").Find(&professoras).Error
	return professoras, err
}

// ListarPorTurma busca as professoras vinculadas a uma turma via tabela de junção.
func (r *repositoryImpl) ListarPorTurma(db *gorm.DB, turmaID uint) ([]Professora, error) {
	var professoras []Professora
	err := db.
		Joins("JOIN turma_professoras ON turma_professoras.professora_id = professoras.id").
		Where("turma_professoras.turma_id = ?", turmaID).
		Order("professoras.nome ASC").
		Find(&professoras).Error
	return professoras, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Professora) error {
	var existente Professora
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.Telefone = novosDados.Telefone

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Professora{}, id).Error
}
