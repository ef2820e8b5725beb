package horario

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, h *Horario) error
	BuscarPorID(db *gorm.DB, id uint) (*Horario, error)
	ListarPorTurma(db *gorm.DB, turmaID uint) ([]Horario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Horario) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, h *Horario) error {
	return db.Save(h).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Horario, error) {
	var h Horario
	err := db.First(&h, id).Error
	return &h, err
}

func (r *repositoryImpl) ListarPorTurma(db *gorm.DB, turmaID uint) ([]Horario, error) {
	var horarios []Horario
	err := db.Where("turma_id = ?", turmaID).
		Order("id ASC").
		Find(&horarios).Error
	return horarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Horario) error {
	var existente Horario
	if err := db.First(&existente, id).Error; err != nil {
		return err
	}

	existente.DiaSemana = novosDados.DiaSemana
	existente.HoraInicio = novosDados.HoraInicio
	existente.HoraFim = novosDados.HoraFim

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Horario{}, id).Error
}
