package repository

import (
	"github.com/dasomcenter/dasom-api/internal/domain/form"
	"gorm.io/gorm"
)

type FormRepo interface {
	GetFormByProgramID(programID uint) (form.Record, error)
	SaveForm(rec *form.Record) error
	DeleteFormByProgramID(programID uint) error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{db: db}
}

func (r *DBFormRepo) GetFormByProgramID(programID uint) (form.Record, error) {
	var rec form.Record
	err := r.db.Where("prg_id = ?", programID).First(&rec).Error
	return rec, err
}

func (r *DBFormRepo) SaveForm(rec *form.Record) error {
	return r.db.Save(rec).Error
}

func (r *DBFormRepo) DeleteFormByProgramID(programID uint) error {
	return r.db.Where("prg_id = ?", programID).Delete(&form.Record{}).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	return &DBFormRepo{db: tx}
}
