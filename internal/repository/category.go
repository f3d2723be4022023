package repository

import (
	"github.com/dasomcenter/dasom-api/internal/domain/category"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	ListCategories() ([]category.Category, error)
	GetCategoryByID(id uint) (category.Category, error)
	GetCategoryBySlug(slug string) (category.Category, error)
	CountChildren(id uint) (int64, error)
	SaveCategory(c *category.Category) error
	DeleteCategory(id uint) error
	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{db: db}
}

func (r *DBCategoryRepo) ListCategories() ([]category.Category, error) {
	var list []category.Category
	err := r.db.Order("sort_order asc, c_id asc").Find(&list).Error
	return list, err
}

func (r *DBCategoryRepo) GetCategoryByID(id uint) (category.Category, error) {
	var c category.Category
	err := r.db.Where("c_id = ?", id).First(&c).Error
	return c, err
}

func (r *DBCategoryRepo) GetCategoryBySlug(slug string) (category.Category, error) {
	var c category.Category
	err := r.db.Where("slug = ?", slug).First(&c).Error
	return c, err
}

func (r *DBCategoryRepo) CountChildren(id uint) (int64, error) {
	var n int64
	err := r.db.Model(&category.Category{}).Where("parent_id = ?", id).Count(&n).Error
	return n, err
}

func (r *DBCategoryRepo) SaveCategory(c *category.Category) error {
	return r.db.Save(c).Error
}

func (r *DBCategoryRepo) DeleteCategory(id uint) error {
	return r.db.Where("c_id = ?", id).Delete(&category.Category{}).Error
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	return &DBCategoryRepo{db: tx}
}
