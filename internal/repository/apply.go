package repository

import (
	"github.com/dasomcenter/dasom-api/internal/domain/apply"
	"gorm.io/gorm"
)

type ApplyRepo interface {
	CreateApplication(a *apply.Application) error
	GetApplicationByID(id uint) (apply.Application, error)
	ListApplicationsByProgram(programID uint, page, limit int) ([]apply.Application, int64, error)
	ListApplicationsSince(programID uint, afterID uint) ([]apply.Application, error)
	MarkReviewed(a *apply.Application) error
	CountByProgram(programID uint) (int64, error)
	WithTx(tx *gorm.DB) ApplyRepo
}

type DBApplyRepo struct {
	db *gorm.DB
}

func NewApplyRepo(db *gorm.DB) *DBApplyRepo {
	return &DBApplyRepo{db: db}
}

func (r *DBApplyRepo) CreateApplication(a *apply.Application) error {
	return r.db.Create(a).Error
}

func (r *DBApplyRepo) GetApplicationByID(id uint) (apply.Application, error) {
	var a apply.Application
	err := r.db.Where("app_id = ?", id).First(&a).Error
	return a, err
}

func (r *DBApplyRepo) ListApplicationsByProgram(programID uint, page, limit int) ([]apply.Application, int64, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	tx := r.db.Model(&apply.Application{}).Where("prg_id = ?", programID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []apply.Application
	err := tx.Order("create_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *DBApplyRepo) ListApplicationsSince(programID uint, afterID uint) ([]apply.Application, error) {
	var list []apply.Application
	err := r.db.Where("prg_id = ? AND app_id > ?", programID, afterID).
		Order("app_id asc").
		Find(&list).Error
	return list, err
}

func (r *DBApplyRepo) MarkReviewed(a *apply.Application) error {
	return r.db.Model(a).
		Select("reviewed_at", "review_note").
		Updates(map[string]interface{}{
			"reviewed_at": a.ReviewedAt,
			"review_note": a.ReviewNote,
		}).Error
}

func (r *DBApplyRepo) CountByProgram(programID uint) (int64, error) {
	var n int64
	err := r.db.Model(&apply.Application{}).Where("prg_id = ?", programID).Count(&n).Error
	return n, err
}

func (r *DBApplyRepo) WithTx(tx *gorm.DB) ApplyRepo {
	return &DBApplyRepo{db: tx}
}
