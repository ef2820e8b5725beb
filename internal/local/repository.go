package local

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, l *Local) error
	BuscarPorID(db *gorm.DB, id uint) (*Local, error)
	ListarTodos(db *gorm.DB) ([]Local, error)
	ListarPorPolo(db *gorm.DB, poloID uint) ([]Local, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Local) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, l *Local) error {
	return db.Save(l).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Local, error) {
	var l Local
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Local, error) {
	var locais []Local
	err := db.Order("nome ASC").Find(&locais).Error
	return locais, err
}

// ListarPorPolo devolve apenas os locais vinculados ao polo informado.
func (r *repositoryImpl) ListarPorPolo(db *gorm.DB, poloID uint) ([]Local, error) {
	var locais []Local
	err := db.Where("polo_id = ?", poloID).Order("nome ASC").Find(&locais).Error
	return locais, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Local) error {
	var existente Local
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.PoloID = novosDados.PoloID
	existente.Nome = novosDados.Nome
	existente.Endereco = novosDados.Endereco

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Local{}, id).Error
}
