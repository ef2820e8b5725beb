package polo

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, p *Polo) error
	BuscarPorID(db *gorm.DB, id uint) (*Polo, error)
	ListarTodos(db *gorm.DB) ([]Polo, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Polo) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Polo) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Polo, error) {
	var p Polo
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Polo, error) {
	var polos []Polo
	err := db.Order("nome ASC").Find(&polos).Error
	return polos, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Polo) error {
	var existente Polo
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Cidade = novosDados.Cidade

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Polo{}, id).Error
}
