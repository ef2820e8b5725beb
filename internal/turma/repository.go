package turma

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, t *Turma) error
	BuscarPorID(db *gorm.DB, id uint) (*Turma, error)
	ListarTodos(db *gorm.DB) ([]Turma, error)
	ListarPorPolo(db *gorm.DB, poloID uint) ([]Turma, error)
	ListarPorLocal(db *gorm.DB, localID uint) ([]Turma, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Turma) error
	VincularProfessoras(db *gorm.DB, id uint, professoraIDs []uint) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Turma) error {
	return db.Save(t).Error
}

// BuscarPorID carrega a turma com horários e professoras, como a tela de detalhe espera.
func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Turma, error) {
	var t Turma
	err := db.Preload("Horarios").
		Preload("Professoras").
		First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Turma, error) {
	var turmas []Turma
	err := db.Preload("Horarios").Preload("Professoras").Order("nome ASC").Find(&turmas).Error
	return turmas, err
}

func (r *repositoryImpl) ListarPorPolo(db *gorm.DB, poloID uint) ([]Turma, error) {
	var turmas []Turma
	err := db.Where("polo_id = ?", poloID).Order("nome ASC").Find(&turmas).Error
	return turmas, err
}

func (r *repositoryImpl) ListarPorLocal(db *gorm.DB, localID uint) ([]Turma, error) {
	var turmas []Turma
	err := db.Where("local_id = ?", localID).Order("nome ASC").Find(&turmas).Error
	return turmas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Turma) error {
	var existente Turma
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.PoloID = novosDados.PoloID
	existente.LocalID = novosDados.LocalID
	existente.Nome = novosDados.Nome
	existente.Nivel = novosDados.Nivel
	existente.Mensalidade = novosDados.Mensalidade
	existente.IdadeAlvo = novosDados.IdadeAlvo

	return db.Save(&existente).Error
}

// VincularProfessoras substitui o conjunto de professoras da turma.
func (r *repositoryImpl) VincularProfessoras(db *gorm.DB, id uint, professoraIDs []uint) error {
	var t Turma
	if err := db.First(&t, id).Error; err != nil {
		return err
	}
	var novas []map[string]interface{}
	for _, pid := range professoraIDs {
		novas = append(novas, map[string]interface{}{"turma_id": id, "professora_id": pid})
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM turma_professoras WHERE turma_id = ?", id).Error; err != nil {
			return err
		}
		if len(novas) == 0 {
			return nil
		}
		return tx.Table("turma_professoras").Create(novas).Error
	})
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Turma{}, id).Error
}
