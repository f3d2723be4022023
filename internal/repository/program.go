package repository

import (
	"github.com/dasomcenter/dasom-api/internal/domain/program"
	"gorm.io/gorm"
)

type ProgramRepo interface {
	ListPrograms(includeDraft bool) ([]program.Program, error)
	GetProgramByID(id uint) (program.Program, error)
	SaveProgram(p *program.Program) error
	DeleteProgram(id uint) error
	WithTx(tx *gorm.DB) ProgramRepo
}

type DBProgramRepo struct {
	db *gorm.DB
}

func NewProgramRepo(db *gorm.DB) *DBProgramRepo {
	return &DBProgramRepo{db: db}
}

func (r *DBProgramRepo) ListPrograms(includeDraft bool) ([]program.Program, error) {
	tx := r.db.Model(&program.Program{})
	if !includeDraft {
		tx = tx.Where("status <> ?", program.StatusDraft)
	}
	var list []program.Program
	err := tx.Order("create_at desc").Find(&list).Error
	return list, err
}

func (r *DBProgramRepo) GetProgramByID(id uint) (program.Program, error) {
	var p program.Program
	err := r.db.Where("prg_id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProgramRepo) SaveProgram(p *program.Program) error {
	return r.db.Save(p).Error
}

func (r *DBProgramRepo) DeleteProgram(id uint) error {
	return r.db.Where("prg_id = ?", id).Delete(&program.Program{}).Error
}

func (r *DBProgramRepo) WithTx(tx *gorm.DB) ProgramRepo {
	return &DBProgramRepo{db: tx}
}
