package repository

import (
	"github.com/dasomcenter/dasom-api/internal/domain/post"
	"gorm.io/gorm"
)

type PostRepo interface {
	ListPosts(q post.ListQuery) ([]post.Post, int64, error)
	GetPostByID(id uint) (post.Post, error)
	SavePost(p *post.Post) error
	DeletePost(id uint) error
	IncrementViewCount(id uint) error
	CountByCategory(categoryID uint) (int64, error)
	WithTx(tx *gorm.DB) PostRepo
}

type DBPostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *DBPostRepo {
	return &DBPostRepo{db: db}
}

func (r *DBPostRepo) ListPosts(q post.ListQuery) ([]post.Post, int64, error) {
	page := q.Page
	limit := q.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	tx := r.db.Model(&post.Post{})
	if q.CategoryID != 0 {
		tx = tx.Where("c_id = ?", q.CategoryID)
	}
	if q.Kind != "" {
		tx = tx.Where("kind = ?", q.Kind)
	}
	if !q.IncludeUnpublished {
		tx = tx.Where("published = true")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []post.Post
	err := tx.Order("pinned desc, create_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (r *DBPostRepo) GetPostByID(id uint) (post.Post, error) {
	var p post.Post
	err := r.db.Where("post_id = ?", id).First(&p).Error
	return p, err
}

func (r *DBPostRepo) SavePost(p *post.Post) error {
	return r.db.Save(p).Error
}

func (r *DBPostRepo) DeletePost(id uint) error {
	return r.db.Where("post_id = ?", id).Delete(&post.Post{}).Error
}

func (r *DBPostRepo) IncrementViewCount(id uint) error {
	return r.db.Model(&post.Post{}).
		Where("post_id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *DBPostRepo) CountByCategory(categoryID uint) (int64, error) {
	var n int64
	err := r.db.Model(&post.Post{}).Where("c_id = ?", categoryID).Count(&n).Error
	return n, err
}

func (r *DBPostRepo) WithTx(tx *gorm.DB) PostRepo {
	return &DBPostRepo{db: tx}
}
